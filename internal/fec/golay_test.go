package fec

import "testing"

func TestGolay2412RoundTrip(t *testing.T) {
	for _, data := range []uint32{0x000, 0x001, 0x123, 0x456, 0x789, 0xABC, 0xFFF} {
		encoded := Encode24_12(data)
		decoded, ok := Decode24_12(encoded)
		if !ok || decoded != data {
			t.Errorf("round trip failed for %03X: decoded=%03X ok=%v", data, decoded, ok)
		}
	}
}

func TestGolay2412CorrectsUpToThreeErrors(t *testing.T) {
	data := uint32(0x5A5)
	encoded := Encode24_12(data)

	for _, flips := range [][]uint{
		{3},
		{3, 10},
		{3, 10, 17},
	} {
		corrupted := encoded
		for _, bit := range flips {
			corrupted ^= 1 << bit
		}
		decoded, ok := Decode24_12(corrupted)
		if !ok || decoded != data {
			t.Errorf("flips=%v: decode=%03X ok=%v, want %03X", flips, decoded, ok, data)
		}
	}
}

func TestHamming1511SingleFlip(t *testing.T) {
	// All-zero codeword is always valid for a systematic linear code.
	bits := make([]int, 15)
	bits[7] = 1 // flip a payload bit
	if !Hamming15_11(bits) {
		t.Fatal("expected correction to report success")
	}
	for i, b := range bits {
		if b != 0 {
			t.Errorf("bit %d not restored to zero: %v", i, bits)
		}
	}
}
