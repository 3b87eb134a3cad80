package dsp

import "testing"

func TestWidenS16Centers(t *testing.T) {
	in := []byte{0, 127, 128, 255}
	out := WidenS16(in, BiasSIMD, false)
	want := []int16{-127, 0, 1, 128}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("byte %d: got %d want %d", i, out[i], want[i])
		}
	}
}

func TestWidenS16RotationIdentityOnFirstPair(t *testing.T) {
	in := []byte{200, 50}
	out := WidenS16(in, BiasSIMD, true)
	if out[0] != int16(200-127) || out[1] != int16(50-127) {
		t.Errorf("first IQ pair should be unrotated (step 0): got %v", out)
	}
}

func TestWidenF32Range(t *testing.T) {
	in := []byte{0, 255}
	out := WidenF32(in, BiasSIMD, false)
	if out[0] >= 0 || out[1] <= 0 {
		t.Errorf("expected centered output straddling zero, got %v", out)
	}
}
