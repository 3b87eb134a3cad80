package runtime

import "sync"

// ExtensionSlotCount bounds the extension table, following the
// "small enum to component record" pattern the re-architecture names
// for late-bound per-module state (e.g. trunking SM, telemetry store,
// per-protocol scratch state) that doesn't belong in the core state
// record itself.
const ExtensionSlotCount = 32

// ExtensionSlot identifies one entry in the extension table. Modules
// that need late-bound state define their own named constant in this
// range.
type ExtensionSlot int

// Teardown is called, if non-nil, when a slot's value is removed or
// the table is torn down, so a module can release whatever resources
// it attached (rings, file handles, DB connections).
type Teardown func(value interface{})

type extensionEntry struct {
	value    interface{}
	teardown Teardown
}

// ExtensionTable is the mutex-guarded install/remove surface for
// late-bound per-module state. Per spec.md §5's shared-resource
// policy, installs/removes take the single mutex, and so do reads:
// Get locks the same mutex, with no lock-free fast path, since an
// uncontended mutex read is cheap enough not to warrant the extra
// complexity of a lock-free slot array for 32 entries.
type ExtensionTable struct {
	mu      sync.Mutex
	entries [ExtensionSlotCount]*extensionEntry
}

// NewExtensionTable builds an empty table.
func NewExtensionTable() *ExtensionTable {
	return &ExtensionTable{}
}

// Install attaches a value (and optional teardown) to a slot,
// replacing (and tearing down) any previous occupant.
func (t *ExtensionTable) Install(slot ExtensionSlot, value interface{}, teardown Teardown) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if prev := t.entries[slot]; prev != nil && prev.teardown != nil {
		prev.teardown(prev.value)
	}
	t.entries[slot] = &extensionEntry{value: value, teardown: teardown}
}

// Get returns the slot's value and whether one is installed.
func (t *ExtensionTable) Get(slot ExtensionSlot) (interface{}, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e := t.entries[slot]
	if e == nil {
		return nil, false
	}
	return e.value, true
}

// Remove tears down and clears a slot, a no-op if nothing is
// installed there.
func (t *ExtensionTable) Remove(slot ExtensionSlot) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e := t.entries[slot]
	if e == nil {
		return
	}
	if e.teardown != nil {
		e.teardown(e.value)
	}
	t.entries[slot] = nil
}

// TeardownAll walks every installed slot and tears it down, clearing
// the table. Called once at shutdown.
func (t *ExtensionTable) TeardownAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, e := range t.entries {
		if e == nil {
			continue
		}
		if e.teardown != nil {
			e.teardown(e.value)
		}
		t.entries[i] = nil
	}
}
