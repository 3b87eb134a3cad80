package p25

// IdenEntry is one row of the 16-entry IDEN table P25 channels are
// resolved against: a base frequency, channel spacing, FDMA/TDMA type,
// and (for TDMA) slots-per-carrier.
type IdenEntry struct {
	Seeded       bool
	Base         uint64 // Hz
	Spacing      uint64 // Hz
	TDMA         bool
	SlotsPerCarrier int
}

// IdenTable holds the 16 IDEN slots a system broadcasts.
type IdenTable [16]IdenEntry

// ChannelToFrequency resolves a 16-bit P25 channel word (4-bit iden |
// 12-bit channel number) to a frequency in Hz. It reports ok=false —
// without retuning — when the iden slot was never seeded, matching
// spec.md §4.5's "invalid channel->frequency mapping must not cause a
// retune and must emit a diagnostic" requirement.
func (t *IdenTable) ChannelToFrequency(channel uint16) (freq uint64, ok bool) {
	iden := (channel >> 12) & 0xF
	number := uint64(channel & 0x0FFF)

	entry := t[iden]
	if !entry.Seeded {
		return 0, false
	}
	if entry.Base == 0 || entry.Spacing == 0 {
		return 0, false
	}
	return entry.Base + number*entry.Spacing, true
}

// Seed installs one IDEN entry. base and spac are the raw broadcast
// fields; per spec.md §8's end-to-end scenario, FDMA bases are scaled
// by 5 Hz/unit and spacings by 125 Hz/unit.
func (t *IdenTable) Seed(iden int, base, spac uint64, tdma bool, slotsPerCarrier int) {
	if iden < 0 || iden >= len(t) {
		return
	}
	t[iden] = IdenEntry{
		Seeded:          true,
		Base:            base * 5,
		Spacing:         spac * 125,
		TDMA:            tdma,
		SlotsPerCarrier: slotsPerCarrier,
	}
}
