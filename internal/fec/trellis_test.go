package fec

import "testing"

func TestTrellis34RoundTrip(t *testing.T) {
	tribits := []int{0, 1, 2, 3, 4, 5, 6, 7, 0, 5, 3}
	symbols := Encode34(tribits)
	decoded, distance := Decode34(symbols)
	if distance != 0 {
		t.Fatalf("expected exact path match, got distance %d", distance)
	}
	for i := range tribits {
		if decoded[i] != tribits[i] {
			t.Errorf("tribit %d: got %d want %d", i, decoded[i], tribits[i])
		}
	}
}

func TestTrellis34SingleSymbolErrorStillDecodes(t *testing.T) {
	tribits := []int{1, 1, 1, 1, 1, 1}
	symbols := Encode34(tribits)
	symbols[3] = (symbols[3] + 1) % 4

	decoded, distance := Decode34(symbols)
	if distance == 0 {
		t.Fatal("expected nonzero distance after injecting a symbol error")
	}
	_ = decoded
}
