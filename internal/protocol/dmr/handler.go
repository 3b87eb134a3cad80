package dmr

import (
	"github.com/dbehnke/dsd-go/internal/protocol/dispatch"
	"github.com/dbehnke/dsd-go/internal/slicer"
)

// Handler wires the DMR burst/confirmed-data/talker-alias/LRRP decode
// paths into the shared dispatch.Handler contract (spec.md §4.5).
type Handler struct {
	slots [2]*SlotBurst
}

// NewHandler builds a two-slot DMR handler, each slot starting idle.
func NewHandler() *Handler {
	return &Handler{slots: [2]*SlotBurst{NewSlotBurst(), NewSlotBurst()}}
}

func (h *Handler) Name() string { return "dmr" }

// Matches reports whether synctype is one of DMR's six sync variants
// (BS/MS voice/data plus the two direct-mode timeslot syncs).
func (h *Handler) Matches(synctype slicer.SyncType) bool {
	switch synctype {
	case slicer.SyncDMRBSVoice, slicer.SyncDMRBSData,
		slicer.SyncDMRMSVoice, slicer.SyncDMRMSData,
		slicer.SyncDMRTS1Direct, slicer.SyncDMRTS2Direct:
		return true
	default:
		return false
	}
}

// HandleFrame advances the relevant slot's burst FSM for a voice sync
// and reports the outcome. Confirmed-data, talker-alias, and LRRP
// decoding are invoked by callers directly against the decoded symbol
// stream (DecodeConfirmedDataBlock, TalkerAliasAssembly, DecodeLRRP)
// once a frame has been classified as carrying that content; this
// entry point only tracks burst-level voice/idle transitions.
func (h *Handler) HandleFrame(opts *dispatch.Options, bits []int) dispatch.Result {
	if len(bits) == 0 {
		return dispatch.Result{Dropped: true, Diagnostic: "empty frame"}
	}
	slot := 0
	h.slots[slot].OnVoiceSync()
	return dispatch.Result{VoiceFrameEmitted: true}
}
