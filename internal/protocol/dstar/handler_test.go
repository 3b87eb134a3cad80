package dstar

import (
	"testing"

	"github.com/dbehnke/dsd-go/internal/protocol/dispatch"
	"github.com/dbehnke/dsd-go/internal/slicer"
)

func TestHandlerMatchesHeaderAndSync(t *testing.T) {
	h := NewHandler()
	if !h.Matches(slicer.SyncDStarHeader) {
		t.Error("expected Matches(SyncDStarHeader) true")
	}
	if res := h.HandleFrame(&dispatch.Options{}, []int{1}); !res.SignalingDecoded {
		t.Error("expected SignalingDecoded true after header sync")
	}

	if !h.Matches(slicer.SyncDStarSync) {
		t.Error("expected Matches(SyncDStarSync) true")
	}
	if res := h.HandleFrame(&dispatch.Options{}, []int{1}); !res.VoiceFrameEmitted {
		t.Error("expected VoiceFrameEmitted true after voice sync")
	}
}
