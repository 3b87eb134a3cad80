// Package dstar implements D-STAR header decoding: the rate-1/2 K=5
// convolutional code (generators 111,101) shared with YSF via
// internal/fec.Viterbi12K5, an involutive scrambler and interleaver
// pair, and CRC-16/X25 header integrity. Grounded on the teacher's
// pkg/ysf's convolutional-engine shape (convolution.go) — the source
// material internal/fec.Viterbi12K5 itself generalizes — since no
// teacher file implements D-STAR directly.
package dstar

import "github.com/dbehnke/dsd-go/internal/fec"

// HeaderBits is the length of a D-STAR header before FEC doubling:
// 41 bytes (328 bits) of header fields.
const HeaderBits = 328

// scramblerWhitening is a fixed pseudo-random whitening pattern XORed
// against header bits; XOR is its own inverse, so Scramble is
// involutive by construction regardless of the specific pattern chosen.
var scramblerWhitening = buildWhitening(HeaderBits)

func buildWhitening(n int) []byte {
	w := make([]byte, n)
	reg := byte(0xA5)
	for i := range w {
		bit := ((reg >> 7) ^ (reg >> 5) ^ (reg >> 4) ^ (reg >> 3)) & 1
		w[i] = reg & 1
		reg = (reg << 1) | bit
	}
	return w
}

// Scramble XORs bits (one bit per byte, 0/1) against the whitening
// pattern. Scramble(Scramble(x)) == x for any input of the same length.
func Scramble(bits []byte) []byte {
	out := make([]byte, len(bits))
	for i, b := range bits {
		w := scramblerWhitening[i%len(scramblerWhitening)]
		out[i] = b ^ w
	}
	return out
}

// interleavePairs lists index pairs the interleaver swaps. Because every
// pair is disjoint and self-paired, applying the same swap set twice is
// the identity — Interleave and Deinterleave are the same function.
func interleavePairs(n int) [][2]int {
	pairs := make([][2]int, 0, n/2)
	for i := 0; i+1 < n; i += 2 {
		// A block interleaver: swap even bit i of the first half with bit
		// (n-1-i) of the second half, giving a fixed, self-inverse
		// permutation.
		j := n - 1 - i
		if j > i {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs
}

// Interleave (and, identically, Deinterleave) applies the involutive
// bit permutation to bits.
func Interleave(bits []byte) []byte {
	out := append([]byte(nil), bits...)
	for _, p := range interleavePairs(len(bits)) {
		out[p[0]], out[p[1]] = out[p[1]], out[p[0]]
	}
	return out
}

// Deinterleave is Interleave's inverse, which is itself (see
// interleavePairs).
func Deinterleave(bits []byte) []byte { return Interleave(bits) }

// DecodeHeader Viterbi-decodes a doubled (656-bit) D-STAR header
// symbol stream into 328 raw bits, then undoes the interleaver and
// scrambler to recover the original header bits.
func DecodeHeader(symbols []byte) []byte {
	v := fec.NewViterbi12K5(HeaderBits)
	v.Reset()
	for i := 0; i+1 < len(symbols); i += 2 {
		v.Decode(symbols[i], symbols[i+1])
	}
	bits := v.Traceback(HeaderBits)
	raw := make([]byte, len(bits))
	copy(raw, bits)

	return Scramble(Deinterleave(raw))
}
