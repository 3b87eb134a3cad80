package slicer

// Dibit values per spec.md §4.4: +1 -> 0, +3 -> 1, -1 -> 2, -3 -> 3.
const (
	DibitPlus1 = 0
	DibitPlus3 = 1
	DibitMinus1 = 2
	DibitMinus3 = 3
)

// Reading bundles a dibit slice result with optional secondary outputs.
type Reading struct {
	Dibit       int
	Reliability byte    // 0..255, raw reliability byte
	Soft        float64 // soft symbol float, for Viterbi metrics
	Analog      float64 // raw analog sample, for secondary audio path
}

// Reader consumes a symbol-rate baseband stream and slices dibits against
// a Calibration's thresholds.
type Reader struct {
	cal *Calibration
}

func NewReader(cal *Calibration) *Reader {
	return &Reader{cal: cal}
}

// Slice classifies one symbol-rate sample into a dibit using the
// calibration's umid/lmid/center thresholds, and reports a reliability
// byte proportional to the sample's distance from the center threshold,
// scaled so half the min..max span maps to 255 (clamped to [0,255]).
func (r *Reader) Slice(sample float64) Reading {
	var dibit int
	switch {
	case sample >= r.cal.Umid:
		dibit = DibitPlus3
	case sample >= r.cal.Center:
		dibit = DibitPlus1
	case sample >= r.cal.Lmid:
		dibit = DibitMinus1
	default:
		dibit = DibitMinus3
	}

	reliability := distanceReliability(sample, r.cal)

	return Reading{
		Dibit:       dibit,
		Reliability: reliability,
		Soft:        sample,
		Analog:      sample,
	}
}

func distanceReliability(sample float64, cal *Calibration) byte {
	span := cal.Max - cal.Min
	if span <= 0 {
		return 0
	}
	dist := sample - cal.Center
	if dist < 0 {
		dist = -dist
	}
	scaled := dist / (span / 2) * 255
	if scaled > 255 {
		scaled = 255
	}
	if scaled < 0 {
		scaled = 0
	}
	return byte(scaled)
}
