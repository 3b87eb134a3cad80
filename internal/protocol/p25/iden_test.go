package p25

import "testing"

func TestChannelToFrequencyScenario(t *testing.T) {
	var table IdenTable
	table.Seed(1, 170200000, 100, false, 1)

	freq, ok := table.ChannelToFrequency(0x100A)
	if !ok {
		t.Fatalf("ChannelToFrequency reported not ok for a seeded iden")
	}
	want := uint64(170200000*5 + 0x00A*100*125)
	if freq != want {
		t.Errorf("freq = %d, want %d", freq, want)
	}
}

func TestChannelToFrequencyUnseededIdenIsNotOK(t *testing.T) {
	var table IdenTable
	if _, ok := table.ChannelToFrequency(0x100A); ok {
		t.Fatalf("expected ok=false for an unseeded iden slot")
	}
}
