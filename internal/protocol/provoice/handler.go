package provoice

import (
	"github.com/dbehnke/dsd-go/internal/protocol/dispatch"
	"github.com/dbehnke/dsd-go/internal/slicer"
)

// Handler wires ProVoice/EDACS sync classification into the shared
// dispatch.Handler contract via ClassifySync. The long-sync
// conventional path is the only one implemented, per the
// ShortSyncSupported Open Question decision.
type Handler struct {
	current Kind
}

func NewHandler() *Handler { return &Handler{current: KindUnknown} }

func (h *Handler) Name() string { return "provoice" }

func (h *Handler) Matches(synctype slicer.SyncType) bool {
	h.current = ClassifySync(synctype)
	return h.current != KindUnknown
}

func (h *Handler) HandleFrame(opts *dispatch.Options, bits []int) dispatch.Result {
	if len(bits) == 0 {
		return dispatch.Result{Dropped: true, Diagnostic: "empty frame"}
	}
	if h.current == KindEDACSDotting {
		return dispatch.Result{SignalingDecoded: true, Diagnostic: "EDACS dotting preamble"}
	}
	return dispatch.Result{VoiceFrameEmitted: true}
}
