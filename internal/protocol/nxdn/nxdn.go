// Package nxdn implements minimal NXDN frame classification: the
// frame-sync-word (FSW) vs. preamble distinction and the voice/data
// LICH (Link Information Channel) RAN/usage field layout, grounded on
// the same dibit-constant-table idiom internal/slicer's sync table
// already establishes for NXDN's sync patterns (spec.md §4.4), since no
// teacher repo implements NXDN directly.
package nxdn

// LICHUsage distinguishes the channel-usage field NXDN's LICH carries.
type LICHUsage int

const (
	LICHUsageSACCH LICHUsage = iota
	LICHUsageVoiceOrData
)

// LICH is NXDN's 8-bit Link Information Channel header: RAN (6 bits),
// usage (1 bit), step (1 bit).
type LICH struct {
	RAN   byte // 6-bit Radio Access Number
	Usage LICHUsage
	Step  bool // true = second half of a 2-step LICH
}

// DecodeLICH extracts RAN/usage/step fields from an 8-bit LICH byte:
// bits [7:2] = RAN, bit[1] = usage selector, bit[0] = step.
func DecodeLICH(b byte) LICH {
	usage := LICHUsageSACCH
	if (b>>1)&0x1 != 0 {
		usage = LICHUsageVoiceOrData
	}
	return LICH{
		RAN:   (b >> 2) & 0x3F,
		Usage: usage,
		Step:  b&0x1 != 0,
	}
}
