// Package fec implements the stateless forward-error-correction codecs
// shared by the protocol handlers: Hamming, Golay, quadratic-residue,
// BPTC, Reed-Solomon, rate-3/4 trellis, and a general K=5 Viterbi decoder.
//
// The Hamming and Reed-Solomon decoders correct the codeword slice in place;
// the Golay, QR, BPTC, trellis and Viterbi decoders leave their input
// unchanged and return the recovered data instead.
// None of them allocate generator tables more than once; table setup is
// idempotent so concurrent first-use from multiple protocol goroutines is
// safe.
package fec

// Hamming(n,k) decoders used by DMR/P25/NXDN signalling blocks. Each variant
// corrects one bit error. Two-bit errors are not detected as such: their
// syndrome names a third position, which is flipped (or, when it lies past
// the end of the codeword, the decode reports failure).

// Hamming15_11 corrects a single-bit error in a 15-bit codeword (11 data +
// 4 parity bits), used as the row/column code inside BPTC(196,96).
// bits is MSB-first, bits[0] is the first transmitted bit.
func Hamming15_11(bits []int) bool {
	return hammingDecode(bits, hamming15_11Parity)
}

// Hamming13_9 corrects a single-bit error in a 13-bit codeword, used by
// NXDN/dPMR short signalling blocks.
func Hamming13_9(bits []int) bool {
	return hammingDecode(bits, hamming13_9Parity)
}

// Hamming10_6 corrects a single-bit error in a 10-bit codeword.
func Hamming10_6(bits []int) bool {
	return hammingDecode(bits, hamming10_6Parity)
}

// parityFunc computes the 1-based position (1..n) of the failing bit from the
// syndrome, or 0 if the codeword is valid. It receives the full codeword.
type parityFunc func(bits []int) int

// hammingDecode runs a generic single-error-correcting Hamming pass: compute
// the syndrome via the supplied parity function, flip the indicated bit
// in place, and report success. A syndrome that points past the end of the
// codeword cannot come from a single-bit error and is reported as a
// failure.
func hammingDecode(bits []int, parity func([]int) int) bool {
	syndrome := parity(bits)
	if syndrome == 0 {
		return true
	}
	if syndrome-1 < len(bits) {
		bits[syndrome-1] ^= 1
		return true
	}
	return false
}

// hamming15_11Parity computes the syndrome for the (15,11,3) Hamming code
// with parity bits at positions 1,2,4,8 (1-based, MSB-first layout used by
// DMR's BPTC(196,96) row/column code).
func hamming15_11Parity(bits []int) int {
	return genericSyndrome(bits, 15)
}

func hamming13_9Parity(bits []int) int {
	return genericSyndrome(bits, 13)
}

// hamming16Parity extends the same syndrome trick to a 16-bit row, the
// width BPTC(128,77)'s 8-row matrix actually uses. hamming15_11Parity
// only examines positions 1..15 and leaves column 15 (0-based) of every
// row outside any check; this variant covers the full row so a single
// flip anywhere in it is always locatable.
func hamming16Parity(bits []int) int {
	return genericSyndrome(bits, 16)
}

func hamming10_6Parity(bits []int) int {
	return genericSyndrome(bits, 10)
}

// genericSyndrome computes the classic Hamming syndrome for a systematic
// code of length n whose parity bits sit at powers of two (1-based
// position). Returns the 1-based failing bit position, or 0 when valid.
func genericSyndrome(bits []int, n int) int {
	syndrome := 0
	for i := 1; i <= n && i <= len(bits); i++ {
		if bits[i-1] != 0 {
			syndrome ^= i
		}
	}
	return syndrome
}
