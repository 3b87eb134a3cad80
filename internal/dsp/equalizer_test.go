package dsp

import "testing"

func TestCQPSKEqualizerCenterSpikeInit(t *testing.T) {
	eq := NewCQPSKEqualizer(5, false, 0, 0.01, 10)
	if eq.taps[2] != 1 {
		t.Errorf("expected center-spike initialization, got %v", eq.taps)
	}
}

func TestCQPSKEqualizerClampsTapAndFeedbackCounts(t *testing.T) {
	eq := NewCQPSKEqualizer(20, true, 10, 0.01, 5)
	if len(eq.taps) > 11 {
		t.Errorf("expected feed-forward taps clamped to <=11, got %d", len(eq.taps))
	}
	if len(eq.dfe) > 4 {
		t.Errorf("expected DFE taps clamped to <=4, got %d", len(eq.dfe))
	}
}

func TestCQPSKEqualizerStepProducesFiniteOutput(t *testing.T) {
	eq := NewCQPSKEqualizer(5, false, 2, 0.01, 5)
	y := eq.Step(complex(0.7, 0.7), true)
	if y != y { // NaN check
		t.Error("equalizer produced NaN output")
	}
}
