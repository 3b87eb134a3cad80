package nxdn

import "testing"

func TestDecodeLICH(t *testing.T) {
	// RAN=0x15 (6 bits), usage bit set, step bit set.
	b := byte(0x15<<2 | 0x1<<1 | 0x1)
	lich := DecodeLICH(b)
	if lich.RAN != 0x15 {
		t.Errorf("RAN = %#x, want 0x15", lich.RAN)
	}
	if lich.Usage != LICHUsageVoiceOrData {
		t.Errorf("Usage = %d, want LICHUsageVoiceOrData", lich.Usage)
	}
	if !lich.Step {
		t.Errorf("Step = false, want true")
	}
}

func TestDecodeLICHSACCH(t *testing.T) {
	lich := DecodeLICH(0x00)
	if lich.Usage != LICHUsageSACCH {
		t.Errorf("Usage = %d, want LICHUsageSACCH", lich.Usage)
	}
}
