package dsp

import "testing"

func TestGardnerTEDOmegaStaysBounded(t *testing.T) {
	ted := NewGardnerTED(10, 0.05, 0.01, 0.001, false)
	for i := 0; i < 1000; i++ {
		ted.Step(-1, 1, -1)
	}
	lo, hi := ted.omegaBounds()
	if ted.omega < lo || ted.omega > hi {
		t.Errorf("omega %v escaped bounds [%v,%v]", ted.omega, lo, hi)
	}
}

func TestGardnerTEDZeroErrorOnSymmetricEye(t *testing.T) {
	ted := NewGardnerTED(10, 0.05, 0.01, 0.001, false)
	_, errSignal := ted.Step(1, 1, 1)
	if errSignal != 0 {
		t.Errorf("expected zero timing error on symmetric early/late, got %v", errSignal)
	}
}

func TestCubicFarrowIdentityAtIntegerPositions(t *testing.T) {
	got := cubicFarrow(1, 2, 3, 4, 0)
	if got != 2 {
		t.Errorf("cubicFarrow at mu=0 should return s1 exactly, got %v", got)
	}
}
