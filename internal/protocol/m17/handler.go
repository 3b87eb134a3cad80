package m17

import (
	"github.com/dbehnke/dsd-go/internal/protocol/dispatch"
	"github.com/dbehnke/dsd-go/internal/slicer"
)

// Handler wires M17's six sync variants (LSF/STR/BRT/PKT/PRE/PIV) into
// the shared dispatch.Handler contract. LSF field extraction
// (ParseLSF) is invoked by slot-context code directly once the 224-bit
// frame has been assembled from the dibit stream.
type Handler struct {
	isLSF bool
}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Name() string { return "m17" }

func (h *Handler) Matches(synctype slicer.SyncType) bool {
	switch synctype {
	case slicer.SyncM17LSF, slicer.SyncM17STR, slicer.SyncM17BRT, slicer.SyncM17PKT, slicer.SyncM17PRE, slicer.SyncM17PIV:
		h.isLSF = synctype == slicer.SyncM17LSF
		return true
	default:
		return false
	}
}

func (h *Handler) HandleFrame(opts *dispatch.Options, bits []int) dispatch.Result {
	if len(bits) == 0 {
		return dispatch.Result{Dropped: true, Diagnostic: "empty frame"}
	}
	if h.isLSF {
		return dispatch.Result{SignalingDecoded: true}
	}
	return dispatch.Result{VoiceFrameEmitted: true}
}
