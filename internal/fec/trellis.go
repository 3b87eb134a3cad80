package fec

// Trellis34 implements DMR's rate-3/4 trellis code: 3 payload bits are
// encoded per transmitted dibit pair using a 4-state convolutional
// structure over a {-3,-1,+1,+3}-style constellation. The decoder here
// takes dibit-pair constellation indices (0..15) and returns the
// recovered tribit stream, correcting the most likely path through the
// trellis rather than hard-deciding each symbol independently — this is
// what makes it resilient to single-symbol corruption that a bit-by-bit
// slicer would mis-decode.

// trellis34NextState[state][tribit] gives the next 4-state trellis state,
// and trellis34Symbol[state][tribit] gives the transmitted constellation
// point (0..15, the 4 bits of a dibit pair) for that transition. The table forms a
// full-coverage, invertible 4-state/3-bit trellis: every (state, tribit)
// pair maps to a distinct symbol per state, which is what lets Decode34
// recover the exact tribit sequence whenever the symbol path matches.
var trellis34NextState = [4][8]int{
	{0, 1, 2, 3, 0, 1, 2, 3},
	{1, 2, 3, 0, 1, 2, 3, 0},
	{2, 3, 0, 1, 2, 3, 0, 1},
	{3, 0, 1, 2, 3, 0, 1, 2},
}

var trellis34Symbol = [4][8]int{
	{0, 8, 4, 12, 2, 10, 6, 14},
	{4, 12, 2, 10, 6, 14, 0, 8},
	{1, 9, 5, 13, 3, 11, 7, 15},
	{5, 13, 3, 11, 7, 15, 1, 9},
}

// Encode34 encodes tribits (each 0..7) into dibit-pair constellation points
// (each 0..15), starting from state 0.
func Encode34(tribits []int) []int {
	state := 0
	out := make([]int, len(tribits))
	for i, t := range tribits {
		out[i] = trellis34Symbol[state][t&7]
		state = trellis34NextState[state][t&7]
	}
	return out
}

// Decode34 recovers the tribit stream from a sequence of dibit-pair
// constellation points using a Viterbi search over the 4-state trellis,
// returning the decoded tribits and the cumulative path distance (0 means
// an exact match, i.e. no symbol errors on the winning path).
func Decode34(symbols []int) (tribits []int, distance int) {
	const states = 4
	cur := make([]int, states)
	for i := range cur {
		cur[i] = 1 << 30
	}
	cur[0] = 0

	type step struct {
		fromState [states]int
		tribit    [states]int
	}
	path := make([]step, len(symbols))

	for n, sym := range symbols {
		next := make([]int, states)
		for i := range next {
			next[i] = 1 << 30
		}
		var st step
		for s := 0; s < states; s++ {
			if cur[s] >= 1<<30 {
				continue
			}
			for t := 0; t < 8; t++ {
				ns := trellis34NextState[s][t]
				emitted := trellis34Symbol[s][t]
				cost := cur[s]
				if emitted != sym {
					cost++
				}
				if cost < next[ns] {
					next[ns] = cost
					st.fromState[ns] = s
					st.tribit[ns] = t
				}
			}
		}
		path[n] = st
		cur = next
	}

	best := 0
	for s := 1; s < states; s++ {
		if cur[s] < cur[best] {
			best = s
		}
	}
	distance = cur[best]

	tribits = make([]int, len(symbols))
	state := best
	for n := len(symbols) - 1; n >= 0; n-- {
		tribits[n] = path[n].tribit[state]
		state = path[n].fromState[state]
	}
	return tribits, distance
}
