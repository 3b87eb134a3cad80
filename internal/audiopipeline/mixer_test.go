package audiopipeline

import "testing"

func TestMixMonoSumsAndClamps(t *testing.T) {
	a := frameOf(0.6)
	b := frameOf(0.6)
	out := MixMono([][FrameSamples]float32{a, b})
	if out[0] != 1.0 {
		t.Fatalf("MixMono()[0] = %v, want clamped to 1.0", out[0])
	}
}

func TestMixStereoInterleaves(t *testing.T) {
	l := frameOf(1)
	r := frameOf(-1)
	out := MixStereo(l, r)
	if out[0] != 1 || out[1] != -1 {
		t.Fatalf("MixStereo()[0:2] = %v, want [1 -1]", out[:2])
	}
	if len(out) != FrameSamples*2 {
		t.Fatalf("len(MixStereo()) = %d, want %d", len(out), FrameSamples*2)
	}
}

func TestFloatToPCM16Clamps(t *testing.T) {
	got := FloatToPCM16([]float32{2.0, -2.0, 0.5})
	if got[0] != 32767 {
		t.Errorf("FloatToPCM16(2.0) = %d, want clamped to 32767", got[0])
	}
	if got[1] != -32768 {
		t.Errorf("FloatToPCM16(-2.0) = %d, want clamped to -32768", got[1])
	}
}
