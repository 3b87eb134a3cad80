package dsp

import (
	"math"
	"testing"
)

func TestFastAtan2Q14MapsPiToQ14One(t *testing.T) {
	got := FastAtan2Q14(0, -1) // atan2(0,-1) = pi
	if got != Q14One && got != -Q14One {
		t.Errorf("expected +/-Q14One at pi, got %d", got)
	}
}

func TestFastAtan2Q14Zero(t *testing.T) {
	got := FastAtan2Q14(0, 1)
	if got != 0 {
		t.Errorf("expected 0 at atan2(0,1), got %d", got)
	}
}

func TestCostasLoopTracksStaticPhaseOffset(t *testing.T) {
	loop := NewCostasLoop(0.05, 0.0025, 0.5)
	offset := math.Pi / 8
	var oi, oq float64
	for n := 0; n < 500; n++ {
		// Feed an ideal QPSK symbol rotated by a fixed phase offset.
		si, sq := math.Cos(offset), math.Sin(offset)
		oi, oq = loop.Step(si, sq)
	}
	// After convergence the derotated point should land near the nearest
	// QPSK axis rather than drifting arbitrarily.
	if math.Abs(oi) < 0.3 && math.Abs(oq) < 0.3 {
		t.Errorf("expected loop to converge toward a constellation axis, got (%v,%v)", oi, oq)
	}
}
