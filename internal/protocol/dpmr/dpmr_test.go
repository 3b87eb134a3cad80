package dpmr

import (
	"testing"

	"github.com/dbehnke/dsd-go/internal/slicer"
)

func TestClassifySync(t *testing.T) {
	cases := []struct {
		in   slicer.SyncType
		want SlotType
	}{
		{slicer.SyncDPMR1, SlotHeader},
		{slicer.SyncDPMR2, SlotVoice},
		{slicer.SyncDPMR3, SlotData},
		{slicer.SyncDPMR4, SlotLastFrame},
		{slicer.SyncP25P1, SlotUnknown},
	}
	for _, c := range cases {
		if got := ClassifySync(c.in); got != c.want {
			t.Errorf("ClassifySync(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
