package p2

import "testing"

func TestDecodeSuperframe2VGatedByAudioAllowed(t *testing.T) {
	var gate AudioGate
	gate.Set(0, false)
	if DecodeSuperframe(Superframe2V, 0, &gate) {
		t.Fatalf("expected no audio when audio_allowed[0] is false")
	}
	gate.Set(0, true)
	if !DecodeSuperframe(Superframe2V, 0, &gate) {
		t.Fatalf("expected audio when audio_allowed[0] is true")
	}
}

func TestDecodeSuperframe4VNeverFirstSubframeGated(t *testing.T) {
	var gate AudioGate // all false
	if !DecodeSuperframe(Superframe4V, 0, &gate) {
		t.Fatalf("expected 4V superframes to never be first-subframe-gated")
	}
}

func TestHexbitReliabilityIsMinCapped(t *testing.T) {
	if got := HexbitReliability([3]int{5, 9, 3}, 8); got != 3 {
		t.Errorf("HexbitReliability = %d, want 3", got)
	}
	if got := HexbitReliability([3]int{20, 30, 40}, 8); got != 8 {
		t.Errorf("HexbitReliability = %d, want capped 8", got)
	}
}

func TestBuildErasuresIncludesFixedSet(t *testing.T) {
	erasures := BuildErasures(ChannelFACCH, nil, 0, 0)
	if len(erasures) != len(facchFixedErasures) {
		t.Fatalf("len(erasures) = %d, want %d fixed FACCH erasures", len(erasures), len(facchFixedErasures))
	}
}

func TestBuildErasuresAddsDynamicUpToCap(t *testing.T) {
	reliabilities := make([]int, 63)
	for i := range reliabilities {
		reliabilities[i] = 10
	}
	reliabilities[20] = 1
	reliabilities[21] = 1
	reliabilities[22] = 1

	erasures := BuildErasures(ChannelSACCH, reliabilities, 5, 2)
	dynamicCount := len(erasures) - len(sacchFixedErasures)
	if dynamicCount != 2 {
		t.Fatalf("dynamic erasure count = %d, want capped at 2", dynamicCount)
	}
}

func TestDecodeRS63_35CleanCodeword(t *testing.T) {
	symbols := make([]int, 63)
	if !DecodeRS63_35(symbols, nil) {
		t.Fatalf("expected success on an all-zero (clean) RS(63,35) codeword")
	}
}

func TestFallbackLengthByChannel(t *testing.T) {
	if FallbackLength(ChannelFACCH) != 16 {
		t.Errorf("FallbackLength(FACCH) != 16")
	}
	if FallbackLength(ChannelSACCH) != 19 {
		t.Errorf("FallbackLength(SACCH) != 19")
	}
}
