package provoice

import (
	"testing"

	"github.com/dbehnke/dsd-go/internal/protocol/dispatch"
	"github.com/dbehnke/dsd-go/internal/slicer"
)

func TestHandlerMatchesAndClassifies(t *testing.T) {
	h := NewHandler()
	if !h.Matches(slicer.SyncEDACSDotting) {
		t.Error("expected Matches(SyncEDACSDotting) true")
	}
	res := h.HandleFrame(&dispatch.Options{}, []int{1})
	if !res.SignalingDecoded {
		t.Error("expected SignalingDecoded for EDACS dotting preamble")
	}
}

func TestHandlerMatchesFalseForUnknown(t *testing.T) {
	h := NewHandler()
	if h.Matches(slicer.SyncDMRBSVoice) {
		t.Error("expected Matches(SyncDMRBSVoice) false")
	}
}
