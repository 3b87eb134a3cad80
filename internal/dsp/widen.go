// Package dsp implements the real-time baseband front end: widening raw
// IQ samples, half-band decimation, channel shaping, carrier recovery,
// the CQPSK equalizer, and symbol timing recovery. Every stage is a pure
// function over its input buffer plus a small per-stage state struct, per
// spec.md §4.3. Built on stdlib `math`/`math/cmplx` only — justified in
// DESIGN.md: no third-party Go DSP/SDR library appears anywhere in the
// retrieved example pack (the one DSP-shaped repo, doismellburning-samoyed,
// is a cgo transliteration and was disqualified as teacher for exactly
// that reason), so these are closed-form numeric kernels built directly
// from their mathematical definitions.
package dsp

// WidenBias selects the zero-centering bias applied when converting raw
// u8 IQ bytes to signed samples: 127 pairs with SIMD-style rotation or
// scalar widen, 128 pairs with the legacy byte-wise 255-x rotation so the
// combined effect is a correctly centered negation (spec.md §4.3).
type WidenBias int

const (
	BiasSIMD   WidenBias = 127
	BiasLegacy WidenBias = 128
)

// WidenS16 converts u8 IQ samples to centered int16 samples, optionally
// applying a cyclic 90-degree IQ rotation (map [i,q,-i,-q] across
// successive IQ pairs) when rotate is true.
func WidenS16(in []byte, bias WidenBias, rotate bool) []int16 {
	out := make([]int16, len(in))
	for i, b := range in {
		out[i] = int16(int(b) - int(bias))
	}
	if rotate {
		rotateIQ16(out)
	}
	return out
}

// WidenF32 is the floating-point analog of WidenS16, normalizing to
// roughly [-1, 1).
func WidenF32(in []byte, bias WidenBias, rotate bool) []float32 {
	out := make([]float32, len(in))
	for i, b := range in {
		out[i] = float32(int(b)-int(bias)) / 128.0
	}
	if rotate {
		rotateIQ32(out)
	}
	return out
}

// rotateIQ16 applies the cyclic 90-degree rotation to interleaved I/Q
// pairs: successive pairs are mapped [i,q] -> [i,q] -> [-q,i] -> [-i,-q]
// -> [q,-i] -> repeat, i.e. a 4-step cycle over pair index.
func rotateIQ16(buf []int16) {
	for p := 0; p+1 < len(buf); p += 2 {
		step := (p / 2) % 4
		i, q := buf[p], buf[p+1]
		switch step {
		case 0:
			// identity
		case 1:
			buf[p], buf[p+1] = -q, i
		case 2:
			buf[p], buf[p+1] = -i, -q
		case 3:
			buf[p], buf[p+1] = q, -i
		}
	}
}

func rotateIQ32(buf []float32) {
	for p := 0; p+1 < len(buf); p += 2 {
		step := (p / 2) % 4
		i, q := buf[p], buf[p+1]
		switch step {
		case 0:
		case 1:
			buf[p], buf[p+1] = -q, i
		case 2:
			buf[p], buf[p+1] = -i, -q
		case 3:
			buf[p], buf[p+1] = q, -i
		}
	}
}
