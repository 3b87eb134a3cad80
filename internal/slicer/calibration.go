// Package slicer implements the dibit reader, adaptive threshold
// calibration, sync-pattern scanner, and warm-start calibration described
// in spec.md §4.4. It sits directly downstream of internal/dsp's symbol-
// rate output and feeds internal/protocol's frame handlers.
package slicer

// Calibration holds the slicer's adaptive threshold state: center/umid/
// lmid/min/max/minref/maxref plus the rolling min/max windows used to
// track them, per spec.md §3's DecoderState calibration fields.
type Calibration struct {
	Center, Umid, Lmid     float64
	Min, Max               float64
	MinRef, MaxRef         float64
	minBuf, maxBuf         []float64
	msize                  int
}

// NewCalibration creates a calibration tracker with rolling window size
// msize (<=1024 per spec.md §4.4).
func NewCalibration(msize int) *Calibration {
	if msize <= 0 || msize > 1024 {
		msize = 1024
	}
	return &Calibration{msize: msize}
}

// Update pushes one new symbol sample into the rolling min/max windows
// and recomputes center/umid/lmid per spec.md §4.4's formulas:
// center=(min+max)/2, umid=center+0.625*(max-center), lmid=center+0.625*(min-center).
func (c *Calibration) Update(sample float64) {
	c.minBuf = pushWindow(c.minBuf, sample, c.msize)
	c.maxBuf = pushWindow(c.maxBuf, sample, c.msize)

	c.Min = minOf(c.minBuf)
	c.Max = maxOf(c.maxBuf)
	c.Center = (c.Min + c.Max) / 2
	c.Umid = c.Center + 0.625*(c.Max-c.Center)
	c.Lmid = c.Center + 0.625*(c.Min-c.Center)
}

// Valid reports the invariant from spec.md §3: min < center < max must
// hold once sync has ever been achieved.
func (c *Calibration) Valid() bool {
	return c.Min < c.Center && c.Center < c.Max
}

func pushWindow(buf []float64, sample float64, msize int) []float64 {
	buf = append(buf, sample)
	if len(buf) > msize {
		buf = buf[len(buf)-msize:]
	}
	return buf
}

func minOf(buf []float64) float64 {
	if len(buf) == 0 {
		return 0
	}
	m := buf[0]
	for _, v := range buf[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(buf []float64) float64 {
	if len(buf) == 0 {
		return 0
	}
	m := buf[0]
	for _, v := range buf[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
