package runtime

import "testing"

func TestExtensionTableInstallAndGet(t *testing.T) {
	tbl := NewExtensionTable()
	tbl.Install(0, "hello", nil)
	v, ok := tbl.Get(0)
	if !ok || v != "hello" {
		t.Fatalf("Get(0) = (%v, %v), want (hello, true)", v, ok)
	}
}

func TestExtensionTableGetUnsetSlot(t *testing.T) {
	tbl := NewExtensionTable()
	_, ok := tbl.Get(5)
	if ok {
		t.Fatalf("expected Get on unset slot to return ok=false")
	}
}

func TestExtensionTableInstallTearsDownPrevious(t *testing.T) {
	tbl := NewExtensionTable()
	torndown := 0
	tbl.Install(1, "first", func(v interface{}) { torndown++ })
	tbl.Install(1, "second", nil)
	if torndown != 1 {
		t.Fatalf("torndown = %d, want 1 (replacing a slot must tear down the previous occupant)", torndown)
	}
}

func TestExtensionTableRemoveTearsDown(t *testing.T) {
	tbl := NewExtensionTable()
	torndown := 0
	tbl.Install(2, "x", func(v interface{}) { torndown++ })
	tbl.Remove(2)
	if torndown != 1 {
		t.Fatalf("torndown = %d, want 1", torndown)
	}
	if _, ok := tbl.Get(2); ok {
		t.Fatalf("expected slot cleared after Remove")
	}
}

func TestExtensionTableTeardownAllClearsEverySlot(t *testing.T) {
	tbl := NewExtensionTable()
	count := 0
	for i := ExtensionSlot(0); i < 3; i++ {
		tbl.Install(i, i, func(v interface{}) { count++ })
	}
	tbl.TeardownAll()
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
	for i := ExtensionSlot(0); i < 3; i++ {
		if _, ok := tbl.Get(i); ok {
			t.Fatalf("slot %d still set after TeardownAll", i)
		}
	}
}
