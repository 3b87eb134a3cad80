// Package p2 implements P25 Phase 2's TDMA frame handling: 2V/4V audio
// superframes gated by a per-slot audio-allowed flag, SACCH/FACCH
// hexbit-reliability signaling decode with RS(63,35), and the MAC
// opcode dispatch table, grounded on the same teacher
// struct-plus-methods shape internal/protocol/dmr and p1 follow, and on
// internal/fec's RS engine (C1) for the FEC layer.
package p2

import "github.com/dbehnke/dsd-go/internal/fec"

// SuperframeKind distinguishes the 2V and 4V audio superframe shapes.
type SuperframeKind int

const (
	Superframe2V SuperframeKind = iota
	Superframe4V
)

// AudioGate tracks the per-slot audio_allowed[slot] flag spec.md §4.5
// names: when false, 2V's first subframe must not produce an MBE call.
type AudioGate struct {
	allowed [2]bool
}

func (g *AudioGate) Set(slot int, allowed bool) {
	if slot < 0 || slot >= len(g.allowed) {
		return
	}
	g.allowed[slot] = allowed
}

func (g *AudioGate) Allowed(slot int) bool {
	if slot < 0 || slot >= len(g.allowed) {
		return false
	}
	return g.allowed[slot]
}

// DecodeSuperframe reports whether the superframe's first subframe
// should produce audio, honoring the per-slot gate for 2V superframes.
// 4V superframes are never first-subframe-gated (all four voice
// subframes carry independent audio).
func DecodeSuperframe(kind SuperframeKind, slot int, gate *AudioGate) bool {
	if kind == Superframe2V && !gate.Allowed(slot) {
		return false
	}
	return true
}

// hexbit reliability erasure positions, fixed per spec.md §4.5.
var (
	facchFixedErasures = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 54, 55, 56, 57, 58, 59, 60, 61, 62}
	sacchFixedErasures = []int{0, 1, 2, 3, 4, 57, 58, 59, 60, 61, 62}
)

// Channel distinguishes FACCH from SACCH for erasure-set selection.
type Channel int

const (
	ChannelFACCH Channel = iota
	ChannelSACCH
)

// HexbitReliability computes the reliability of one hexbit (6-bit
// group spanning 3 dibits) as the minimum of its three contributing
// dibit reliabilities, capped at maxReliability.
func HexbitReliability(dibitReliabilities [3]int, maxReliability int) int {
	min := dibitReliabilities[0]
	for _, r := range dibitReliabilities[1:] {
		if r < min {
			min = r
		}
	}
	if min > maxReliability {
		return maxReliability
	}
	return min
}

// BuildErasures returns the fixed erasure positions for ch, plus any
// additional hexbit positions (0-based symbol index) whose reliability
// falls below threshold, up to maxDynamic additional erasures.
func BuildErasures(ch Channel, hexbitReliabilities []int, threshold, maxDynamic int) []int {
	var fixed []int
	switch ch {
	case ChannelFACCH:
		fixed = facchFixedErasures
	case ChannelSACCH:
		fixed = sacchFixedErasures
	}

	fixedSet := make(map[int]bool, len(fixed))
	for _, p := range fixed {
		fixedSet[p] = true
	}

	erasures := append([]int(nil), fixed...)
	added := 0
	for i, r := range hexbitReliabilities {
		if added >= maxDynamic {
			break
		}
		if fixedSet[i] {
			continue
		}
		if r < threshold {
			erasures = append(erasures, i)
			added++
		}
	}
	return erasures
}

// DecodeRS63_35 corrects up to t=14 symbol errors using the supplied
// erasure positions; exceeding t must return failure rather than a
// wrong correction, enforced by fec.Code.Decode's post-correction
// re-verification.
func DecodeRS63_35(symbols []int, erasures []int) (ok bool) {
	corrected, uncorrectable := fec.RS63_35.Decode(symbols, erasures)
	return corrected && !uncorrectable
}
