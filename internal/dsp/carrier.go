package dsp

import "math"

// Q14One is the Q14 fixed-point representation of 1.0 (and, via
// FastAtan2Q14, of pi radians) per spec.md §4.3's Costas/FLL contract.
const Q14One = 1 << 14

// FastAtan2Q14 returns atan2(y, x) scaled so that +/- pi maps to
// +/- Q14One, matching the fixed-point phase convention the
// carrier-recovery loop operates in. The angle is computed with
// math.Atan2; no piecewise-linear approximation is used.
func FastAtan2Q14(y, x float64) int32 {
	rad := math.Atan2(y, x)
	return int32(rad / math.Pi * Q14One)
}

// CostasLoop implements a 2nd-order Costas loop for BPSK/QPSK carrier
// recovery, producing a running phase/frequency estimate from successive
// complex baseband samples.
type CostasLoop struct {
	phase, freq    float64
	alpha, beta    float64
	freqLimit      float64
}

// NewCostasLoop builds a loop with the given proportional/integral gains
// and a symmetric frequency-estimate clamp (radians/sample).
func NewCostasLoop(alpha, beta, freqLimit float64) *CostasLoop {
	return &CostasLoop{alpha: alpha, beta: beta, freqLimit: freqLimit}
}

// Step rotates one complex sample by the current phase estimate, computes
// a Costas phase-detector error, and updates phase/frequency. Returns the
// derotated sample.
func (c *CostasLoop) Step(i, q float64) (oi, oq float64) {
	cs, sn := math.Cos(-c.phase), math.Sin(-c.phase)
	oi = i*cs - q*sn
	oq = i*sn + q*cs

	// QPSK phase-detector: sign(I)*Q - sign(Q)*I.
	err := sign(oi)*oq - sign(oq)*oi

	c.freq += c.beta * err
	if c.freq > c.freqLimit {
		c.freq = c.freqLimit
	} else if c.freq < -c.freqLimit {
		c.freq = -c.freqLimit
	}
	c.phase += c.freq + c.alpha*err

	for c.phase > 2*math.Pi {
		c.phase -= 2 * math.Pi
	}
	for c.phase < -2*math.Pi {
		c.phase += 2 * math.Pi
	}
	return oi, oq
}

func sign(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return -1
}

// FLL implements a frequency-locked loop alternative to the Costas phase
// loop, tracking frequency via the cross product of successive samples.
type FLL struct {
	freq, alpha float64
	prevI       float64
	prevQ       float64
}

func NewFLL(alpha float64) *FLL {
	return &FLL{alpha: alpha}
}

func (f *FLL) Step(i, q float64) float64 {
	cross := f.prevI*q - f.prevQ*i
	dot := f.prevI*i + f.prevQ*q
	if dot != 0 || cross != 0 {
		f.freq += f.alpha * math.Atan2(cross, dot)
	}
	f.prevI, f.prevQ = i, q
	return f.freq
}
