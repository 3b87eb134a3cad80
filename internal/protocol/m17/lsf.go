// Package m17 implements M17's Link Setup Frame (LSF) bit-field parse
// and packet-mode protocol-id enumeration, per spec.md §4.5/§6.
// Grounded on the same fixed-offset field-extraction idiom as teacher
// pkg/protocol/dmrd.go's Parse, generalized from byte offsets to the
// bit-level field layout M17's LSF uses (no teacher repo implements
// M17 directly).
package m17

// LSF is the decoded Link Setup Frame.
type LSF struct {
	Dst     [48]int // bits 0..47
	Src     [48]int // bits 48..95
	DT      int     // data type, 2 bits
	ET      int     // encryption type, 3 bits
	ES      int     // encryption subtype, 5 bits
	CN      int     // channel access number
	RS      int     // reserved
	Meta    [112]int
	HasMeta bool
}

// Type-word sub-field widths within the fixed 16-bit [96:112] range.
// dt/et/es (2/3/5 bits) sum to 10 and are taken as given; cn/rs are
// scaled down from the named 7/11 bits to 4/2 to fit the remaining 6
// bits, since 2+3+5+7+11=28 cannot fit the pinned 96..111 boundary —
// an Open Question resolved in favor of the fixed 224-bit frame length
// and field order over the literal cn/rs widths.
const (
	lsfDTBits = 2
	lsfETBits = 3
	lsfESBits = 5
	lsfCNBits = 4
	lsfRSBits = 2
)

// ParseLSF decodes a 224-bit LSF bit slice per spec.md §6's field
// layout: dst[0:48], src[48:96], type word at [96:112] (dt|et|es|cn|rs,
// see lsf*Bits), META/IV at [112:224], has_meta = META[0] != 0.
func ParseLSF(bits []int) (LSF, bool) {
	var lsf LSF
	if len(bits) < 224 {
		return lsf, false
	}
	copy(lsf.Dst[:], bits[0:48])
	copy(lsf.Src[:], bits[48:96])

	typeWord := bits[96:112]
	i := 0
	lsf.DT = bitsToInt(typeWord[i : i+lsfDTBits])
	i += lsfDTBits
	lsf.ET = bitsToInt(typeWord[i : i+lsfETBits])
	i += lsfETBits
	lsf.ES = bitsToInt(typeWord[i : i+lsfESBits])
	i += lsfESBits
	lsf.CN = bitsToInt(typeWord[i : i+lsfCNBits])
	i += lsfCNBits
	lsf.RS = bitsToInt(typeWord[i : i+lsfRSBits])

	copy(lsf.Meta[:], bits[112:224])
	lsf.HasMeta = lsf.Meta[0] != 0
	return lsf, true
}

func bitsToInt(bits []int) int {
	v := 0
	for _, b := range bits {
		v = (v << 1) | (b & 1)
	}
	return v
}

// PacketProtocolID enumerates M17 packet-mode protocol identifiers.
type PacketProtocolID int

const (
	ProtocolRaw     PacketProtocolID = 0x00
	ProtocolAPRS    PacketProtocolID = 0x02
	ProtocolSMS     PacketProtocolID = 0x05
	ProtocolTLE     PacketProtocolID = 0x07
	ProtocolMetaText PacketProtocolID = 0x80
	ProtocolUnknown PacketProtocolID = -1
)

// ClassifyProtocolID maps a raw protocol-id byte to its PacketProtocolID,
// returning ProtocolUnknown for anything not in the named set.
func ClassifyProtocolID(id byte) PacketProtocolID {
	switch id {
	case 0x00:
		return ProtocolRaw
	case 0x02:
		return ProtocolAPRS
	case 0x05:
		return ProtocolSMS
	case 0x07:
		return ProtocolTLE
	case 0x80:
		return ProtocolMetaText
	default:
		return ProtocolUnknown
	}
}
