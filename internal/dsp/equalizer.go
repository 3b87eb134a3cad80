package dsp

import "math"

// CQPSKEqualizer is a fractionally-spaced complex FIR equalizer for
// differential/coherent CQPSK per spec.md §4.3: CMA warm-up, decision-
// directed LMS adaptation (fixed step size mu, not normalized by input
// power), an optional widely-linear conjugate branch,
// and an optional DFE with up to 4 feedback taps. Coefficients are held
// as Q14 fixed-point-equivalent float64 (we keep float64 internally and
// expose a Q14 snapshot via TapsQ14 for callers that need the fixed-point
// view spec.md's numeric contract describes).
type CQPSKEqualizer struct {
	taps    []complex128 // odd length, <= 11
	wlTaps  []complex128 // widely-linear conjugate branch, same length when enabled
	dfe     []complex128 // up to 4 feedback taps
	mu      float64
	wl      bool
	history []complex128
	fbHist  []complex128

	// mode, holdSamples and minHold are stored but Step does not read
	// them: no FFE/WL alternation, hold hysteresis or tap leakage is
	// applied.
	mode        int
	holdSamples int
	minHold     int
}

// NewCQPSKEqualizer builds a CMA-warm-up equalizer with numTaps (odd, <=
// 11) feed-forward taps, optional widely-linear branch, and numDFETaps
// (<=4) decision-feedback taps.
func NewCQPSKEqualizer(numTaps int, enableWL bool, numDFETaps int, mu float64, minHold int) *CQPSKEqualizer {
	if numTaps%2 == 0 {
		numTaps++
	}
	if numTaps > 11 {
		numTaps = 11
	}
	if numDFETaps > 4 {
		numDFETaps = 4
	}
	taps := make([]complex128, numTaps)
	taps[numTaps/2] = 1 // center-spike initialization
	e := &CQPSKEqualizer{
		taps:    taps,
		mu:      mu,
		wl:      enableWL,
		history: make([]complex128, numTaps),
		dfe:     make([]complex128, numDFETaps),
		fbHist:  make([]complex128, numDFETaps),
		minHold: minHold,
	}
	if enableWL {
		e.wlTaps = make([]complex128, numTaps)
	}
	return e
}

// Step pushes one fractionally-spaced input sample through the equalizer,
// returns the equalized symbol estimate, and performs one adaptation step
// (CMA until the first few hundred symbols, LMS decision-directed
// thereafter — callers select via useCMA).
func (e *CQPSKEqualizer) Step(x complex128, useCMA bool) complex128 {
	copy(e.history[1:], e.history[:len(e.history)-1])
	e.history[0] = x

	var y complex128
	for k, t := range e.taps {
		y += t * e.history[k]
	}
	if e.wl {
		for k, t := range e.wlTaps {
			y += t * complex(real(e.history[k]), -imag(e.history[k]))
		}
	}
	for k, t := range e.dfe {
		y -= t * e.fbHist[k]
	}

	var err complex128
	if useCMA {
		const R2 = 2.0 // CMA dispersion constant for unit-modulus QPSK
		mag2 := real(y)*real(y) + imag(y)*imag(y)
		err = y * complex(R2-mag2, 0)
	} else {
		decision := hardDecisionQPSK(y)
		err = decision - y
	}

	for k := range e.taps {
		e.taps[k] += complex(e.mu, 0) * err * cmplxConj(e.history[k])
	}
	if e.wl {
		for k := range e.wlTaps {
			e.wlTaps[k] += complex(e.mu, 0) * err * e.history[k]
		}
	}

	decision := hardDecisionQPSK(y)
	copy(e.fbHist[1:], e.fbHist[:len(e.fbHist)-1])
	if len(e.fbHist) > 0 {
		e.fbHist[0] = decision
	}
	for k := range e.dfe {
		e.dfe[k] -= complex(e.mu, 0) * err * cmplxConj(e.fbHist[k])
	}

	return y
}

func cmplxConj(c complex128) complex128 { return complex(real(c), -imag(c)) }

func hardDecisionQPSK(y complex128) complex128 {
	re, im := 1.0, 1.0
	if real(y) < 0 {
		re = -1
	}
	if imag(y) < 0 {
		im = -1
	}
	return complex(re, im) / math.Sqrt2
}

// TapsQ14 returns the feed-forward taps scaled to Q14 fixed point.
func (e *CQPSKEqualizer) TapsQ14() []complex64 {
	out := make([]complex64, len(e.taps))
	for i, t := range e.taps {
		out[i] = complex64(complex(real(t)*Q14One, imag(t)*Q14One))
	}
	return out
}
