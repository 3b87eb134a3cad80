package trunking

// P25SM wraps the shared SM for P25, adding the Phase-2-specific
// best-effort SS18 superframe flush on release and the modulation/
// symbol-rate override a return-to-CC applies — behavior that must
// never leak into DMRT3SM (spec.md §8 property 8).
type P25SM struct {
	*SM
	Phase2 bool
	// FlushPartialSuperframe is invoked by Release when Phase2 is true,
	// before the return-to-CC hook, giving the caller a chance to emit
	// any buffered SS18 audio. A return to CC through Tick does not call
	// it.
	FlushPartialSuperframe func()
	// ApplyModulationOverride is invoked by Release after the
	// return-to-CC hook (not by Tick); P25-only (never called from
	// DMRT3SM).
	ApplyModulationOverride func()
}

// NewP25SM builds a P25 SM.
func NewP25SM(hook TunerHook, policy Policy, phase2 bool) *P25SM {
	return &P25SM{SM: NewSM(hook, policy), Phase2: phase2}
}

// Release overrides SM.Release to add the Phase 2 flush and modulation
// override around the shared return-to-CC path.
func (p *P25SM) Release() {
	if p.anySlotActiveOrWithinHangtime() {
		return
	}
	if p.Phase2 && p.FlushPartialSuperframe != nil {
		p.FlushPartialSuperframe()
	}
	p.returnToCC()
	if p.ApplyModulationOverride != nil {
		p.ApplyModulationOverride()
	}
}
