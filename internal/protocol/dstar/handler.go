package dstar

import (
	"github.com/dbehnke/dsd-go/internal/protocol/dispatch"
	"github.com/dbehnke/dsd-go/internal/slicer"
)

// Handler wires D-STAR header/sync classification into the shared
// dispatch.Handler contract. Header decode (DecodeHeader) is invoked
// by slot-context code once the convolution-coded symbol stream for a
// full header has been accumulated.
type Handler struct {
	sawHeader bool
}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Name() string { return "dstar" }

func (h *Handler) Matches(synctype slicer.SyncType) bool {
	h.sawHeader = synctype == slicer.SyncDStarHeader
	return h.sawHeader || synctype == slicer.SyncDStarSync
}

func (h *Handler) HandleFrame(opts *dispatch.Options, bits []int) dispatch.Result {
	if len(bits) == 0 {
		return dispatch.Result{Dropped: true, Diagnostic: "empty frame"}
	}
	if h.sawHeader {
		return dispatch.Result{SignalingDecoded: true}
	}
	return dispatch.Result{VoiceFrameEmitted: true}
}
