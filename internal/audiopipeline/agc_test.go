package audiopipeline

import "testing"

func TestAGCSilenceShortCircuit(t *testing.T) {
	agc := NewAGC(0.5)
	samples := make([]float32, FrameSamples) // all zero
	agc.ApplyFloat(samples)
	for i, s := range samples {
		if s != 0 {
			t.Fatalf("sample[%d] = %v, want 0 (silence must not be amplified)", i, s)
		}
	}
}

func TestAGCBoostsQuietSignal(t *testing.T) {
	agc := NewAGC(1.0)
	samples := make([]float32, FrameSamples)
	for i := range samples {
		samples[i] = 0.01 // quiet but not silent
	}
	before := samples[0]
	agc.ApplyFloat(samples)
	if samples[0] <= before {
		t.Fatalf("expected AGC to boost a quiet signal, got %v from %v", samples[0], before)
	}
}

func TestAGCShortClampsToPCM16Range(t *testing.T) {
	agc := NewAGC(1.0)
	samples := make([]int16, FrameSamples)
	for i := range samples {
		samples[i] = 100
	}
	agc.ApplyShort(samples)
	for _, s := range samples {
		if s > 32767 || s < -32768 {
			t.Fatalf("sample out of PCM16 range: %v", s)
		}
	}
}

func TestManualGainScaleByInputKind(t *testing.T) {
	if ManualGainScale(InputNormalizedFloat) != manualGainFloatScale {
		t.Errorf("ManualGainScale(NormalizedFloat) = %v, want %v", ManualGainScale(InputNormalizedFloat), manualGainFloatScale)
	}
	if ManualGainScale(InputPCM16) != manualGainPCM16Scale {
		t.Errorf("ManualGainScale(PCM16) = %v, want %v", ManualGainScale(InputPCM16), manualGainPCM16Scale)
	}
}

func TestApplyManualGainScalesByKind(t *testing.T) {
	samples := []float32{0.1, 0.2}
	ApplyManualGain(samples, InputPCM16, 1.0)
	if samples[0] != 0.1 {
		t.Fatalf("PCM16 base scale should be identity, got %v", samples[0])
	}
}
