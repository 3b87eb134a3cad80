package dpmr

import (
	"github.com/dbehnke/dsd-go/internal/protocol/dispatch"
	"github.com/dbehnke/dsd-go/internal/slicer"
)

// Handler wires dPMR's four sync variants into the shared
// dispatch.Handler contract via ClassifySync. Matches records the
// classified slot type for the upcoming HandleFrame call, since the
// dispatch.Handler contract passes synctype only to Matches.
type Handler struct {
	current SlotType
}

func NewHandler() *Handler { return &Handler{current: SlotUnknown} }

func (h *Handler) Name() string { return "dpmr" }

func (h *Handler) Matches(synctype slicer.SyncType) bool {
	h.current = ClassifySync(synctype)
	return h.current != SlotUnknown
}

func (h *Handler) HandleFrame(opts *dispatch.Options, bits []int) dispatch.Result {
	if len(bits) == 0 {
		return dispatch.Result{Dropped: true, Diagnostic: "empty frame"}
	}
	switch h.current {
	case SlotVoice:
		return dispatch.Result{VoiceFrameEmitted: true}
	default:
		return dispatch.Result{SignalingDecoded: true}
	}
}
