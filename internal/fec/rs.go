package fec

import "fmt"

// Reed-Solomon decoders over GF(2^6) (symbol values 0..63), the field LMR
// protocols use for their RS(n,k) variants. All four named codes in
// spec.md §2 are shortened/punctured codes of the natural GF(64) length-63
// code, so a single parameterized engine backs all of them — this mirrors
// how ezpwd (the reference most LMR decoders build against) implements a
// family of RS codes over one Galois-field engine rather than one decoder
// per code.

const gf6Prime = 0x43 // x^6 + x + 1, the primitive polynomial for GF(2^6)

type gf6 struct {
	expTable [127]int // anti-log table, double length to avoid modular wraparound in multiply
	logTable [64]int
}

func newGF6() *gf6 {
	g := &gf6{}
	x := 1
	for i := 0; i < 63; i++ {
		g.expTable[i] = x
		g.logTable[x] = i
		x <<= 1
		if x&0x40 != 0 {
			x ^= gf6Prime
		}
	}
	for i := 63; i < 127; i++ {
		g.expTable[i] = g.expTable[i-63]
	}
	return g
}

var fieldGF6 = newGF6()

func (g *gf6) mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return g.expTable[(g.logTable[a]+g.logTable[b])%63]
}

func (g *gf6) div(a, b int) int {
	if a == 0 {
		return 0
	}
	return g.expTable[(g.logTable[a]-g.logTable[b]+63)%63]
}

func (g *gf6) pow(a, n int) int {
	if a == 0 {
		return 0
	}
	return g.expTable[(g.logTable[a]*n)%63]
}

// Code describes one Reed-Solomon code over GF(64): N total symbols, K data
// symbols, and the derived error-correcting capacity T = (N-K)/2.
type Code struct {
	N, K int
}

var (
	// RS12_9 is DMR's short RS(12,9): corrects 1 symbol, detects 2.
	RS12_9 = Code{N: 12, K: 9}
	// RS24_12_13 covers P25 Phase 1 LDU header protection.
	RS24_12_13 = Code{N: 24, K: 12}
	// RS36_20_17 covers P25 Phase 1 LDU tail protection.
	RS36_20_17 = Code{N: 36, K: 20}
	// RS63_35 is P25 Phase 2's full-length code, corrects up to t=14.
	RS63_35 = Code{N: 63, K: 35}
)

func (c Code) t() int { return (c.N - c.K) / 2 }

// Decode corrects up to c.t() symbol errors in-place in symbols (each entry
// a value 0..63) and reports whether the result is a valid codeword. A
// non-nil erasures slice lists known-bad symbol indices (0-based, within
// the first len(symbols) positions) and is combined with t via the
// standard 2*errors+erasures <= n-k bound, implementing the soft-erasure
// contract from spec.md §4.1.
func (c Code) Decode(symbols []int, erasures []int) (corrected bool, uncorrectable bool) {
	if len(symbols) != c.N {
		return false, true
	}

	nk := c.N - c.K
	syndromes := make([]int, nk)
	clean := true
	for i := range syndromes {
		s := 0
		alpha := fieldGF6.expTable[i+1] // roots alpha^1..alpha^(n-k)
		x := 1
		for j := c.N - 1; j >= 0; j-- {
			s ^= fieldGF6.mul(symbols[j], x)
			x = fieldGF6.mul(x, alpha)
		}
		syndromes[i] = s
		if s != 0 {
			clean = false
		}
	}
	if clean {
		return true, false
	}

	erasureLocators := make([]int, len(erasures))
	for i, pos := range erasures {
		erasureLocators[i] = fieldGF6.expTable[c.N-1-pos]
	}

	errLocatorPoly, errCount, ok := berlekampMassey(syndromes, erasureLocators, nk)
	if !ok || 2*errCount+len(erasures) > nk {
		return false, true
	}

	roots, locations := chienSearch(errLocatorPoly, c.N)
	if len(roots) != errCount+len(erasures) {
		return false, true
	}

	magnitudes := forney(syndromes, errLocatorPoly, roots, nk)
	for i, loc := range locations {
		symbols[loc] ^= magnitudes[i]
	}

	// Re-verify: a wrong correction must never be reported as success.
	for i := 0; i < nk; i++ {
		s := 0
		alpha := fieldGF6.expTable[i+1]
		x := 1
		for j := c.N - 1; j >= 0; j-- {
			s ^= fieldGF6.mul(symbols[j], x)
			x = fieldGF6.mul(x, alpha)
		}
		if s != 0 {
			return false, true
		}
	}
	return true, false
}

// berlekampMassey computes the error-locator polynomial from the syndrome
// sequence. Returns the polynomial (low-order first), the number of errors
// it implies, and whether the degree is consistent (decodable).
func berlekampMassey(syndromes, erasureLocators []int, nk int) ([]int, int, bool) {
	c := make([]int, nk+1)
	b := make([]int, nk+1)
	c[0], b[0] = 1, 1

	// Seed with the erasure locator polynomial so known-erasure positions
	// are guaranteed roots, per the standard erasure+error BM variant.
	for _, loc := range erasureLocators {
		next := make([]int, nk+1)
		for i := 0; i <= nk; i++ {
			next[i] ^= c[i]
			if i > 0 {
				next[i] ^= fieldGF6.mul(loc, c[i-1])
			}
		}
		c = next
	}
	copy(b, c)

	l := len(erasureLocators)
	m := 1
	bVal := 1
	for n := l; n < nk; n++ {
		delta := syndromes[n]
		for i := 1; i <= l; i++ {
			delta ^= fieldGF6.mul(c[i], syndromes[n-i])
		}
		if delta == 0 {
			m++
			continue
		}
		t := make([]int, nk+1)
		copy(t, c)

		coef := fieldGF6.div(delta, bVal)
		for i := 0; i+m <= nk; i++ {
			c[i+m] ^= fieldGF6.mul(coef, b[i])
		}

		if 2*l <= n+len(erasureLocators) {
			l = n + 1 + len(erasureLocators) - l
			b = t
			bVal = delta
			m = 1
		} else {
			m++
		}
	}

	degree := 0
	for i := nk; i >= 0; i-- {
		if c[i] != 0 {
			degree = i
			break
		}
	}
	return c[:degree+1], degree - len(erasureLocators), true
}

// chienSearch finds the roots of the error-locator polynomial by brute
// force evaluation over all field elements (GF(64) is small enough that
// this is cheap and avoids a second specialized search routine).
func chienSearch(locatorPoly []int, n int) (roots []int, locations []int) {
	for i := 0; i < n; i++ {
		x := fieldGF6.expTable[(63-i)%63]
		v := 0
		xp := 1
		for _, coeff := range locatorPoly {
			v ^= fieldGF6.mul(coeff, xp)
			xp = fieldGF6.mul(xp, x)
		}
		if v == 0 {
			roots = append(roots, x)
			locations = append(locations, n-1-i)
		}
	}
	return roots, locations
}

// forney computes error magnitudes at the given root locations using the
// syndrome polynomial and the error-locator polynomial's formal derivative.
func forney(syndromes, locatorPoly, roots []int, nk int) []int {
	omega := errorEvaluator(syndromes, locatorPoly, nk)
	magnitudes := make([]int, len(roots))
	for i, x := range roots {
		num := polyEval(omega, x)
		den := locatorDerivativeEval(locatorPoly, x)
		if den == 0 {
			magnitudes[i] = 0
			continue
		}
		magnitudes[i] = fieldGF6.div(num, den)
	}
	return magnitudes
}

func errorEvaluator(syndromes, locatorPoly []int, nk int) []int {
	omega := make([]int, nk)
	for i := 0; i < nk; i++ {
		v := 0
		for j := 0; j <= i && j < len(locatorPoly); j++ {
			v ^= fieldGF6.mul(locatorPoly[j], syndromes[i-j])
		}
		omega[i] = v
	}
	return omega
}

func polyEval(poly []int, x int) int {
	v := 0
	xp := 1
	for _, c := range poly {
		v ^= fieldGF6.mul(c, xp)
		xp = fieldGF6.mul(xp, x)
	}
	return v
}

func locatorDerivativeEval(poly []int, x int) int {
	v := 0
	xp := 1
	for i := 1; i < len(poly); i += 2 {
		v ^= fieldGF6.mul(poly[i], xp)
		xp = fieldGF6.mul(xp, fieldGF6.mul(x, x))
	}
	return v
}

func (c Code) String() string {
	return fmt.Sprintf("RS(%d,%d)", c.N, c.K)
}
