package m17

import (
	"testing"

	"github.com/dbehnke/dsd-go/internal/protocol/dispatch"
	"github.com/dbehnke/dsd-go/internal/slicer"
)

func TestHandlerMatchesM17Syncs(t *testing.T) {
	h := NewHandler()
	for _, st := range []slicer.SyncType{slicer.SyncM17LSF, slicer.SyncM17STR, slicer.SyncM17BRT, slicer.SyncM17PKT, slicer.SyncM17PRE, slicer.SyncM17PIV} {
		if !h.Matches(st) {
			t.Errorf("expected Matches(%v) true", st)
		}
	}
	if h.Matches(slicer.SyncYSF) {
		t.Error("expected Matches(SyncYSF) false")
	}
}

func TestHandlerHandleFrameDistinguishesLSF(t *testing.T) {
	h := NewHandler()
	h.Matches(slicer.SyncM17LSF)
	if res := h.HandleFrame(&dispatch.Options{}, []int{1}); !res.SignalingDecoded {
		t.Error("expected SignalingDecoded after LSF sync")
	}

	h.Matches(slicer.SyncM17STR)
	if res := h.HandleFrame(&dispatch.Options{}, []int{1}); !res.VoiceFrameEmitted {
		t.Error("expected VoiceFrameEmitted after STR sync")
	}
}
