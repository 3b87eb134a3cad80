package dsp

import "math"

// LowPass designs a windowed-sinc low-pass FIR filter mirroring the
// GNU-Radio-equivalent `firdes::low_pass` reference: cutoff and
// transition width in Hz relative to sampleRate, Blackman-windowed, with
// gain applied post-normalization so the filter has unity DC gain scaled
// by gain.
func LowPass(gain, sampleRate, cutoff, transitionWidth float64) []float64 {
	numTaps := estimateNumTaps(sampleRate, transitionWidth)
	if numTaps%2 == 0 {
		numTaps++
	}
	taps := make([]float64, numTaps)
	center := numTaps / 2
	fc := cutoff / sampleRate

	var sum float64
	for i := 0; i < numTaps; i++ {
		n := i - center
		var sinc float64
		if n == 0 {
			sinc = 2 * fc
		} else {
			x := 2 * math.Pi * fc * float64(n)
			sinc = math.Sin(x) / (math.Pi * float64(n))
		}
		w := blackmanWindow(i, numTaps)
		taps[i] = sinc * w
		sum += taps[i]
	}

	if sum != 0 {
		scale := gain / sum
		for i := range taps {
			taps[i] *= scale
		}
	}
	return taps
}

// estimateNumTaps follows the standard Blackman-window tap-count estimate:
// N ≈ 4 / (transition width normalized to sample rate).
func estimateNumTaps(sampleRate, transitionWidth float64) int {
	if transitionWidth <= 0 {
		transitionWidth = sampleRate * 0.05
	}
	n := int(4.0 * sampleRate / transitionWidth)
	if n < 3 {
		n = 3
	}
	return n
}

// RootRaisedCosine designs an RRC pulse-shaping / matched filter with the
// given roll-off factor (beta), span in symbols, and samples-per-symbol.
func RootRaisedCosine(beta float64, spanSymbols, samplesPerSymbol int) []float64 {
	numTaps := spanSymbols*samplesPerSymbol + 1
	taps := make([]float64, numTaps)
	center := numTaps / 2
	sps := float64(samplesPerSymbol)

	for i := 0; i < numTaps; i++ {
		t := float64(i-center) / sps
		taps[i] = rrcSample(t, beta)
	}

	var sum float64
	for _, v := range taps {
		sum += v
	}
	if sum != 0 {
		for i := range taps {
			taps[i] /= sum
		}
	}
	return taps
}

func rrcSample(t, beta float64) float64 {
	if t == 0 {
		return 1 - beta + 4*beta/math.Pi
	}
	if beta != 0 && math.Abs(math.Abs(4*beta*t)-1) < 1e-8 {
		return (beta / math.Sqrt2) * ((1+2/math.Pi)*math.Sin(math.Pi/(4*beta)) + (1-2/math.Pi)*math.Cos(math.Pi/(4*beta)))
	}
	num := math.Sin(math.Pi*t*(1-beta)) + 4*beta*t*math.Cos(math.Pi*t*(1+beta))
	den := math.Pi * t * (1 - (4*beta*t)*(4*beta*t))
	if den == 0 {
		den = 1e-12
	}
	return num / den
}

// FIRFilter applies a direct-form FIR filter with persistent history,
// used for channel shaping after LowPass/RootRaisedCosine design.
type FIRFilter struct {
	taps    []float64
	history []float64
}

func NewFIRFilter(taps []float64) *FIRFilter {
	return &FIRFilter{taps: taps, history: make([]float64, len(taps)-1)}
}

func (f *FIRFilter) Filter(in []float64) []float64 {
	extended := make([]float64, len(f.history)+len(in))
	copy(extended, f.history)
	copy(extended[len(f.history):], in)

	out := make([]float64, len(in))
	for n := range in {
		var acc float64
		for k, t := range f.taps {
			acc += t * extended[n+k]
		}
		out[n] = acc
	}
	if len(extended) >= len(f.taps)-1 {
		copy(f.history, extended[len(extended)-(len(f.taps)-1):])
	}
	return out
}
