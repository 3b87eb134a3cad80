package p2

import (
	"testing"

	"github.com/dbehnke/dsd-go/internal/protocol/dispatch"
	"github.com/dbehnke/dsd-go/internal/slicer"
)

func TestHandlerMatchesP25P2Sync(t *testing.T) {
	h := NewHandler()
	if !h.Matches(slicer.SyncP25P2) {
		t.Error("expected Matches(SyncP25P2) true")
	}
	if h.Matches(slicer.SyncP25P1) {
		t.Error("expected Matches(SyncP25P1) false")
	}
}

func TestHandlerGateStartsClosed(t *testing.T) {
	h := NewHandler()
	if h.Gate().Allowed(0) {
		t.Error("expected slot 0 to start not allowed")
	}
	h.Gate().Set(0, true)
	if !h.Gate().Allowed(0) {
		t.Error("expected slot 0 allowed after Set(true)")
	}
}

func TestHandlerHandleFrameDropsEmpty(t *testing.T) {
	h := NewHandler()
	res := h.HandleFrame(&dispatch.Options{}, nil)
	if !res.Dropped {
		t.Error("expected Dropped true for empty frame")
	}
}
