package p2

import "testing"

func TestIsGrantOpcodeMFID90(t *testing.T) {
	if !IsGrantOpcode(MACOpcodeMFID90GrantA3, 0x90) {
		t.Errorf("expected MFID-0x90 A3 to be a grant opcode")
	}
	if !IsGrantOpcode(MACOpcodeMFID90GrantA4, 0x90) {
		t.Errorf("expected MFID-0x90 A4 to be a grant opcode")
	}
	if IsGrantOpcode(MACOpcodeMFID90GrantA3, 0x01) {
		t.Errorf("expected wrong MFID to not be treated as a grant")
	}
}

func TestIsGrantOpcodeUUVoiceGrant(t *testing.T) {
	if !IsGrantOpcode(MACOpcodeUUVoiceGrant, 0x00) {
		t.Errorf("expected UU 0x44 to be a grant opcode regardless of MFID")
	}
}

func TestIsGrantOpcodeRejectsOthers(t *testing.T) {
	if IsGrantOpcode(MACOpcodePTT, 0x00) {
		t.Errorf("PTT should not be treated as a grant opcode")
	}
}

func TestApplyMACSignalNeverFlipsAudioGate(t *testing.T) {
	var gate AudioGate
	gate.Set(0, true)
	ApplyMACSignal(&gate, 0)
	if !gate.Allowed(0) {
		t.Fatalf("ApplyMACSignal must not flip per-slot audio gates")
	}
}
