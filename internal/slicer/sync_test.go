package slicer

import "testing"

func TestScanExactMatch(t *testing.T) {
	pattern := dibitsFromString("D471C9634D") // YSF
	history := append([]int{1, 2, 3}, pattern...)
	history = append(history, 0, 1, 2)

	m := Scan(history, 2)
	if m.SyncType != SyncYSF {
		t.Fatalf("expected SyncYSF match, got %v (distance %d)", m.SyncType, m.Distance)
	}
	if m.Distance != 0 {
		t.Errorf("expected exact match distance 0, got %d", m.Distance)
	}
}

func TestScanInvertedPolarity(t *testing.T) {
	pattern := dibitsFromString("5544") // D-STAR sync
	inverted := make([]int, len(pattern))
	for i, d := range pattern {
		inverted[i] = 3 - d
	}
	m := Scan(inverted, 2)
	if m.SyncType != SyncDStarSync {
		t.Fatalf("expected inverted D-STAR sync match, got %v", m.SyncType)
	}
}

func TestScanNoMatchBeyondMaxDistance(t *testing.T) {
	history := []int{0, 0, 0, 0, 0, 0, 0, 0}
	m := Scan(history, 0)
	if m.SyncType != SyncUnknown {
		t.Errorf("expected no match on an all-zero history with maxDistance=0, got %v", m.SyncType)
	}
}
