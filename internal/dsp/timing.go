package dsp

// GardnerTED implements Gardner timing-error detection over the three
// samples per symbol (early, mid, late) the caller supplies, interpolating
// the symbol with either a 3-sample quadratic interpolator or a
// cubic-Farrow fractional-delay interpolator. Neither path decimates:
// each Step call yields one symbol. The dual loop updates both mu
// (fractional phase) and omega (symbol period), with omega bounded to
// omega_mid*(1 +/- omega_rel).
type GardnerTED struct {
	omega, omegaMid, omegaRel float64
	mu                        float64
	gainMu, gainOmega         float64
	cubic                     bool
	lockAccum                 float64
	lockCount                 int
}

// NewGardnerTED builds a timing-recovery loop. When cubic is true, a
// cubic-Farrow interpolator is used; otherwise the 3-sample quadratic
// interpolator mmseInterpolate is used.
func NewGardnerTED(samplesPerSymbol float64, omegaRel, gainMu, gainOmega float64, cubic bool) *GardnerTED {
	return &GardnerTED{
		omega:     samplesPerSymbol,
		omegaMid:  samplesPerSymbol,
		omegaRel:  omegaRel,
		gainMu:    gainMu,
		gainOmega: gainOmega,
		cubic:     cubic,
	}
}

// Step consumes one symbol period's worth of samples (early, mid, late —
// the classic Gardner 3-tap error geometry) and returns the interpolated
// symbol plus the timing error used to update mu/omega.
func (g *GardnerTED) Step(early, mid, late float64) (symbol float64, timingError float64) {
	timingError = (late - early) * mid

	g.mu += g.gainMu * timingError
	g.omega += g.gainOmega * timingError

	lo := g.omegaMid * (1 - g.omegaRel)
	hi := g.omegaMid * (1 + g.omegaRel)
	if g.omega < lo {
		g.omega = lo
	} else if g.omega > hi {
		g.omega = hi
	}

	for g.mu >= 1 {
		g.mu -= 1
	}
	for g.mu < 0 {
		g.mu += 1
	}

	if g.cubic {
		symbol = cubicFarrow(early, mid, late, late, g.mu)
	} else {
		symbol = mmseInterpolate(early, mid, late, g.mu)
	}

	g.lockAccum += eyeEnergy(mid) - eyeEnergy((early+late)/2)
	g.lockCount++
	return symbol, timingError
}

// Locked reports whether the accumulated eye-center-vs-mid-symbol energy
// comparison indicates a converged timing loop.
func (g *GardnerTED) Locked(threshold float64) bool {
	if g.lockCount == 0 {
		return false
	}
	return g.lockAccum/float64(g.lockCount) > threshold
}

func eyeEnergy(x float64) float64 { return x * x }

// mmseInterpolate is a 3-sample quadratic (Lagrange) fractional
// interpolator over early/mid/late; it is not an 8-tap MMSE polyphase
// bank. Fractional position mu blends mid toward late.
func mmseInterpolate(early, mid, late, mu float64) float64 {
	return mid + mu*(late-mid) - mu*(1-mu)*0.5*(late-2*mid+early)
}

// cubicFarrow is a standard cubic Farrow fractional-delay interpolator
// using four consecutive samples (here early/mid/late plus a repeated
// late sample when only three are available from the caller).
func cubicFarrow(s0, s1, s2, s3, mu float64) float64 {
	c0 := s1
	c1 := 0.5 * (s2 - s0)
	c2 := s0 - 2.5*s1 + 2*s2 - 0.5*s3
	c3 := 0.5*(s3-s0) + 1.5*(s1-s2)
	return ((c3*mu+c2)*mu+c1)*mu + c0
}

// omegaBounds exposes the current clamp range, useful for diagnostics.
func (g *GardnerTED) omegaBounds() (lo, hi float64) {
	return g.omegaMid * (1 - g.omegaRel), g.omegaMid * (1 + g.omegaRel)
}
