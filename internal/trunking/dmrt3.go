package trunking

// DMRT3SM wraps the shared SM for DMR Tier III, adding C_MOVE's
// TS2->TS1 voice-channel-pair transition and the burst-counter reset
// spec.md §8's end-to-end scenario names. Unlike P25SM, it never
// applies modulation or symbol-rate overrides on return-to-CC
// (spec.md §8 property 8).
type DMRT3SM struct {
	*SM
	// BurstReset is called with the slot whose burst counter must be
	// reset to idle on a C_MOVE (the opposite slot from the
	// destination), nil if unused.
	BurstReset func(slot int)
}

// NewDMRT3SM builds a DMR Tier III SM.
func NewDMRT3SM(hook TunerHook, policy Policy) *DMRT3SM {
	return &DMRT3SM{SM: NewSM(hook, policy)}
}

// CMove processes a C_MOVE CSBK: recompute the destination slot's
// voice channel from RX_INT (MHz) and RX_STEP (channel-number units of
// 125 Hz each, the same scaling IDEN spacing uses elsewhere in this
// system), reset the opposite slot's burst counter to idle, and mark
// the destination slot voice-active.
func (d *DMRT3SM) CMove(destSlot int, rxIntMHz uint64, rxStepUnits uint64) {
	freq := rxIntMHz*1_000_000 + rxStepUnits*125
	other := 1 - destSlot
	d.voiceChannel[destSlot] = freq
	if d.BurstReset != nil {
		d.BurstReset(other)
	}
	d.VoiceSync(destSlot)
}

// PClear processes a P_CLEAR signal on the given slot: marks it
// inactive and, if the other slot is also idle, attempts release
// (return-to-CC) through the normal Release path — never applying any
// P25-only modulation/symbol-rate override (property 8).
func (d *DMRT3SM) PClear(slot int) {
	d.slots[slot].VoiceActive = false
	d.Release()
}
