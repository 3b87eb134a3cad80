package dsp

import "math"

// HalfbandDecimator implements a symmetric half-band FIR filter with
// persistent left-wing history, decimating by 2. Per spec.md §4.3: odd
// taps are exactly zero, the center tap is 0.5, and the remaining even
// taps sum to 0.5 so the overall DC gain is unity.
type HalfbandDecimator struct {
	taps    []float64
	history []float64
}

// NewHalfbandDecimator builds a decimator for the given odd tap count
// (15, 23, or 31), generating the classic windowed half-band design.
func NewHalfbandDecimator(numTaps int) *HalfbandDecimator {
	taps := designHalfband(numTaps)
	return &HalfbandDecimator{
		taps:    taps,
		history: make([]float64, numTaps-1),
	}
}

// designHalfband builds a half-band low-pass FIR via the windowed-sinc
// method, then zeroes the odd-indexed taps (a half-band filter's defining
// property) and fixes the center tap to exactly 0.5, renormalizing the
// remaining even taps so they still sum to 0.5 — preserving unity DC gain
// (sum of all taps == 1) after the odd taps are forced to zero.
func designHalfband(numTaps int) []float64 {
	taps := make([]float64, numTaps)
	center := numTaps / 2
	for i := 0; i < numTaps; i++ {
		n := i - center
		var sinc float64
		if n == 0 {
			sinc = 0.5
		} else if n%2 != 0 {
			sinc = 0
		} else {
			sinc = sinHalfband(n)
		}
		window := blackmanWindow(i, numTaps)
		taps[i] = sinc * window
	}

	taps[center] = 0
	var evenSum float64
	for i, t := range taps {
		if (i-center)%2 == 0 {
			evenSum += t
		}
	}
	if evenSum != 0 {
		scale := 0.5 / evenSum
		for i := range taps {
			if (i-center)%2 == 0 && i != center {
				taps[i] *= scale
			}
		}
	}
	taps[center] = 0.5
	return taps
}

func sinHalfband(n int) float64 {
	// sin(pi*n/2) / (pi*n/2), the ideal half-band impulse response at
	// even offsets from center.
	x := piOver2 * float64(n)
	return math.Sin(x) / x
}

const piOver2 = math.Pi / 2

func blackmanWindow(i, n int) float64 {
	a0, a1, a2 := 0.42, 0.5, 0.08
	x := 2 * math.Pi * float64(i) / float64(n-1)
	return a0 - a1*math.Cos(x) + a2*math.Cos(2*x)
}

// Decimate filters and decimates-by-2 in, returning len(in)/2 output
// samples and retaining the filter's left-wing history for the next call.
func (h *HalfbandDecimator) Decimate(in []float64) []float64 {
	extended := make([]float64, len(h.history)+len(in))
	copy(extended, h.history)
	copy(extended[len(h.history):], in)

	out := make([]float64, 0, len(in)/2)
	numTaps := len(h.taps)
	for start := 0; start+numTaps <= len(extended); start += 2 {
		var acc float64
		for k, t := range h.taps {
			if t == 0 {
				continue
			}
			acc += t * extended[start+k]
		}
		out = append(out, acc)
	}

	if len(extended) >= numTaps-1 {
		copy(h.history, extended[len(extended)-(numTaps-1):])
	}
	return out
}
