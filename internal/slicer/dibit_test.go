package slicer

import "testing"

func TestReaderSliceBoundaries(t *testing.T) {
	cal := &Calibration{Min: -3, Max: 3, Center: 0, Umid: 1.875, Lmid: -1.875}
	r := NewReader(cal)

	cases := []struct {
		sample float64
		want   int
	}{
		{2.5, DibitPlus3},
		{0.5, DibitPlus1},
		{-0.5, DibitMinus1},
		{-2.5, DibitMinus3},
	}
	for _, c := range cases {
		got := r.Slice(c.sample).Dibit
		if got != c.want {
			t.Errorf("Slice(%v) = %d, want %d", c.sample, got, c.want)
		}
	}
}

func TestReaderReliabilityClamped(t *testing.T) {
	cal := &Calibration{Min: -3, Max: 3, Center: 0}
	r := NewReader(cal)
	rel := r.Slice(100).Reliability
	if rel != 255 {
		t.Errorf("expected clamped reliability 255, got %d", rel)
	}
}
