package trunking

// NeighborRing is a fixed-capacity FIFO of candidate control-channel
// frequencies, per spec.md §6: new candidates append with rollover once
// at capacity (16), and add/used counters track activity for
// diagnostics.
type NeighborRing struct {
	capacity  int
	freqs     []uint64
	AddCount  int
	UsedCount int
}

// NewNeighborRing builds a ring with the given capacity.
func NewNeighborRing(capacity int) *NeighborRing {
	return &NeighborRing{capacity: capacity}
}

// Add appends freq if not already present, evicting the oldest entry
// (FIFO) once at capacity.
func (r *NeighborRing) Add(freq uint64) {
	for _, f := range r.freqs {
		if f == freq {
			return
		}
	}
	if len(r.freqs) >= r.capacity {
		r.freqs = r.freqs[1:]
	}
	r.freqs = append(r.freqs, freq)
	r.AddCount++
}

// MarkUsed records that a candidate was consulted (e.g. tried as a new
// CC), incrementing UsedCount.
func (r *NeighborRing) MarkUsed() {
	r.UsedCount++
}

// List returns a copy of the current candidate frequencies, oldest
// first.
func (r *NeighborRing) List() []uint64 {
	out := make([]uint64, len(r.freqs))
	copy(out, r.freqs)
	return out
}
