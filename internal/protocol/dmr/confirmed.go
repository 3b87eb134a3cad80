package dmr

import "github.com/dbehnke/dsd-go/internal/fec"

// ConfirmedDataBlock is the decoded layout of one Confirmed Data 3/4
// trellis block: DBSN(7) | CRC9_msb(1) | CRC9_low(8) | 16 bytes payload,
// per spec.md §4.5.
type ConfirmedDataBlock struct {
	DBSN    byte // 7-bit data block serial number
	CRC9    uint16
	Payload [16]byte
}

// DecodeConfirmedDataBlock decodes tribit-carrying symbols (as produced
// by the rate-3/4 trellis) into a ConfirmedDataBlock. symbols must hold
// at least 48 trellis-coded constellation points (48 tribits = 144 bits =
// the 18-byte block); shorter input yields a zero-value block. Decode proceeds
// via fec.Decode34 and then the fixed DBSN/CRC9/payload byte layout.
func DecodeConfirmedDataBlock(symbols []int) (ConfirmedDataBlock, int) {
	tribits, distance := fec.Decode34(symbols)

	bits := make([]int, 0, len(tribits)*3)
	for _, t := range tribits {
		bits = append(bits, (t>>2)&1, (t>>1)&1, t&1)
	}

	var block ConfirmedDataBlock
	if len(bits) < 18*8 {
		return block, distance
	}

	block.DBSN = byte(bitsToInt(bits[0:7]))
	crcMSB := bitsToInt(bits[7:8])
	crcLow := bitsToInt(bits[8:16])
	block.CRC9 = uint16(crcMSB)<<8 | uint16(crcLow)

	for i := 0; i < 16; i++ {
		block.Payload[i] = byte(bitsToInt(bits[16+i*8 : 16+i*8+8]))
	}
	return block, distance
}

func bitsToInt(bits []int) int {
	v := 0
	for _, b := range bits {
		v = (v << 1) | (b & 1)
	}
	return v
}
