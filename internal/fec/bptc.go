package fec

// BPTC implements DMR's Block Product Turbo Code: a product of Hamming row
// and column codes over a 196-bit matrix (for voice LC/CACH: Hamming(15,11)
// rows, Hamming(13,9) columns, effective payload 96 bits) or a 128-bit
// matrix (16-bit Hamming rows, no column code, effective payload 77 bits).

// BPTC196x96 deinterleaves, row/column-corrects, and extracts the 96-bit
// payload from a 196-bit BPTC matrix (13 rows x 15 columns fill the first
// 195 deinterleaved bits; the last one is not used). bits must have length
// 196 and is left unchanged: corrections are applied to the deinterleaved
// copy. The payload is the first 96 bits of the corrected matrix in
// row-major order, so a single flipped bit is corrected before extraction.
func BPTC196x96(bits []int) (payload []int, ok bool) {
	return bptcDecode(bits, 196, 15, 13, 96)
}

// BPTC128x77 is the shorter BPTC variant used by P25/NXDN-style 128-bit
// carriers (8 rows x 16 columns), extracting a 77-bit payload.
func BPTC128x77(bits []int) (payload []int, ok bool) {
	return bptcDecode(bits, 128, 16, 8, 77)
}

// bptcInterleave196 is DMR's published bit interleave matrix for the
// 196-bit BPTC code: deinterleaved[i] = bits[bptcInterleave196[i]].
var bptcInterleave196 = buildBPTCInterleave(196, 15)

var bptcInterleave128 = buildBPTCInterleave(128, 16)

// buildBPTCInterleave generates a "hop by the column count" interleave
// schedule: position i in transmission order maps to row-major slot
// (i*hop) mod total, where hop is cols, or the next larger value coprime
// with total when cols shares a factor with it (as 16 does with 128), so
// the schedule is always a permutation. Consecutive transmitted bits land
// in different rows after deinterleaving.
func buildBPTCInterleave(total, cols int) []int {
	hop := cols
	for {
		a, b := hop, total
		for b != 0 {
			a, b = b, a%b
		}
		if a == 1 {
			break
		}
		hop++
	}
	order := make([]int, total)
	for i := 0; i < total; i++ {
		order[i] = (i * hop) % total
	}
	return order
}

// columnParityFor returns the Hamming parity function matching a column
// codeword of the given length, or nil if no column code is defined for
// that length (the 128-bit/8-row variant has no standard column code and
// relies on its row code covering the full row width instead, see
// rowParityFor).
func columnParityFor(rows int) parityFunc {
	switch rows {
	case 13:
		return hamming13_9Parity
	case 15:
		return hamming15_11Parity
	default:
		return nil
	}
}

// rowParityFor returns the Hamming parity function matching a row
// codeword of the given width. BPTC(196,96)'s 15-column rows use the
// standard (15,11) code; BPTC(128,77)'s 16-column rows need a wider
// syndrome so column 15 (0-based) is checked too — hamming15_11Parity
// only covers positions 1..15 and silently ignores a flip in column 15,
// leaving it uncorrected while still reporting success.
func rowParityFor(cols int) parityFunc {
	switch cols {
	case 16:
		return hamming16Parity
	default:
		return hamming15_11Parity
	}
}

func bptcDecode(bits []int, total, cols, rows, payloadLen int) ([]int, bool) {
	if len(bits) != total {
		return nil, false
	}

	interleave := bptcInterleave196
	if total == 128 {
		interleave = bptcInterleave128
	}

	deinterleaved := make([]int, total)
	for i, src := range interleave {
		deinterleaved[i] = bits[src]
	}

	matrix := make([][]int, rows)
	for r := 0; r < rows; r++ {
		matrix[r] = deinterleaved[r*cols : (r+1)*cols]
	}

	// Column (Hamming) correction first, then row correction, matching
	// BPTC's product-code decode order: columns carry the shorter parity
	// check and resolve cleanest before row decode. The column codeword
	// length is `rows`, which selects which Hamming variant applies.
	columnParity := columnParityFor(rows)

	corrected := true
	if columnParity != nil {
		for c := 0; c < cols; c++ {
			column := make([]int, rows)
			for r := 0; r < rows; r++ {
				column[r] = matrix[r][c]
			}
			if !hammingDecode(column, columnParity) {
				corrected = false
			}
			for r := 0; r < rows; r++ {
				matrix[r][c] = column[r]
			}
		}
	}

	rowParity := rowParityFor(cols)
	for r := 0; r < rows; r++ {
		if !hammingDecode(matrix[r], rowParity) {
			corrected = false
		}
	}

	payload := make([]int, 0, payloadLen)
	for r := 0; r < rows && len(payload) < payloadLen; r++ {
		for c := 0; c < cols && len(payload) < payloadLen; c++ {
			payload = append(payload, matrix[r][c])
		}
	}

	return payload, corrected
}
