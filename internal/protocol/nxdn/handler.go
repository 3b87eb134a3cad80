package nxdn

import (
	"github.com/dbehnke/dsd-go/internal/protocol/dispatch"
	"github.com/dbehnke/dsd-go/internal/slicer"
)

// Handler wires NXDN's FSW/preamble sync classification into the
// shared dispatch.Handler contract. LICH field extraction
// (DecodeLICH) is invoked by slot-context code directly once the LICH
// byte has been assembled from the dibit stream.
type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Name() string { return "nxdn" }

func (h *Handler) Matches(synctype slicer.SyncType) bool {
	return synctype == slicer.SyncNXDNFSW || synctype == slicer.SyncNXDNPreamble
}

func (h *Handler) HandleFrame(opts *dispatch.Options, bits []int) dispatch.Result {
	if len(bits) == 0 {
		return dispatch.Result{Dropped: true, Diagnostic: "empty frame"}
	}
	return dispatch.Result{SignalingDecoded: true}
}
