package p1

import (
	"github.com/dbehnke/dsd-go/internal/protocol/dispatch"
	"github.com/dbehnke/dsd-go/internal/slicer"
)

// Handler wires P25 Phase 1's sync classification into the shared
// dispatch.Handler contract. Like the DMR handler, this entry point
// only tracks sync-level frame arrival; LDU voice-frame assembly
// (DecodeLDU), TSBK opcode decode (ParseTSBK), and grant resolution
// (ResolveGrant) are invoked by slot-context code directly once a
// frame's payload has been demultiplexed from the dibit stream, since
// those operations need state (accumulated IMBE subframes, RS symbol
// buffers) this per-sync entry point does not carry.
type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Name() string { return "p25p1" }

func (h *Handler) Matches(synctype slicer.SyncType) bool {
	return synctype == slicer.SyncP25P1
}

// HandleFrame reports a signaling frame for any matched sync; TSBK
// opcode decode happens once the frame's symbol-to-byte payload has
// been assembled by the caller.
func (h *Handler) HandleFrame(opts *dispatch.Options, bits []int) dispatch.Result {
	if len(bits) == 0 {
		return dispatch.Result{Dropped: true, Diagnostic: "empty frame"}
	}
	return dispatch.Result{SignalingDecoded: true}
}
