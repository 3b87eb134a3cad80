package p2

import (
	"github.com/dbehnke/dsd-go/internal/protocol/dispatch"
	"github.com/dbehnke/dsd-go/internal/slicer"
)

// Handler wires P25 Phase 2's TDMA sync classification into the shared
// dispatch.Handler contract, owning the per-slot AudioGate that callers
// flip between frames through Gate (ApplyMACSignal leaves it
// untouched). Superframe assembly (DecodeSuperframe) and RS(63,35)
// SACCH/FACCH decode are invoked directly by slot-context code, which
// holds the hexbit-reliability buffers this per-sync entry point does
// not.
type Handler struct {
	gate AudioGate
}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Name() string { return "p25p2" }

func (h *Handler) Matches(synctype slicer.SyncType) bool {
	return synctype == slicer.SyncP25P2
}

// Gate exposes the handler's AudioGate so callers can flip slot
// audio-allowed state from a decoded MAC opcode.
func (h *Handler) Gate() *AudioGate { return &h.gate }

func (h *Handler) HandleFrame(opts *dispatch.Options, bits []int) dispatch.Result {
	if len(bits) == 0 {
		return dispatch.Result{Dropped: true, Diagnostic: "empty frame"}
	}
	return dispatch.Result{SignalingDecoded: true}
}
