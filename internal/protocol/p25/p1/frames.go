// Package p1 implements P25 Phase 1 frame handling: HDU, LDU1/2 (with
// RS(24,12,13) header and RS(36,20,17) tail protection), TDU/TDULC,
// TSBK, and MBT, grounded on the teacher's pkg/protocol (dmrd.go's
// byte-offset-constant Parse/Encode shape, lc.go's LC-builder shape)
// generalized from DMR's Homebrew wire format to P25's frame types, and
// on internal/fec's already-built RS(N,K) engine for the FEC layer.
package p1

import (
	"github.com/dbehnke/dsd-go/internal/fec"
	"github.com/dbehnke/dsd-go/internal/protocol/p25"
)

// FrameType distinguishes the P25 Phase 1 frame types this package
// handles.
type FrameType int

const (
	FrameHDU FrameType = iota
	FrameLDU1
	FrameLDU2
	FrameTDU
	FrameTDULC
	FrameTSBK
	FrameMBT
)

// LDUFrame holds one LDU1 or LDU2's 12 IMBE voice frames plus the
// link-control/encryption-sync data interleaved with them, after
// RS(24,12,13) header and RS(36,20,17) tail correction.
type LDUFrame struct {
	Type         FrameType
	VoiceFrames  [12][]byte
	HeaderOK     bool
	TailOK       bool
	HeaderSymbols []int // 24 GF(64) symbols, corrected in place
	TailSymbols   []int // 36 GF(64) symbols, corrected in place
}

// DecodeLDU corrects the header and tail RS codewords of one LDU frame
// and returns the frame with HeaderOK/TailOK reflecting whether each
// codeword decoded cleanly.
func DecodeLDU(frameType FrameType, voiceFrames [12][]byte, headerSymbols, tailSymbols []int) LDUFrame {
	f := LDUFrame{
		Type:          frameType,
		VoiceFrames:   voiceFrames,
		HeaderSymbols: headerSymbols,
		TailSymbols:   tailSymbols,
	}
	if len(headerSymbols) == fec.RS24_12_13.N {
		ok, uncorrectable := fec.RS24_12_13.Decode(headerSymbols, nil)
		f.HeaderOK = ok && !uncorrectable
	}
	if len(tailSymbols) == fec.RS36_20_17.N {
		ok, uncorrectable := fec.RS36_20_17.Decode(tailSymbols, nil)
		f.TailOK = ok && !uncorrectable
	}
	return f
}

// TSBK is one decoded trunking signaling block.
type TSBK struct {
	Opcode  byte
	MFID    byte
	Payload []byte // remaining 8 bytes after opcode/mfid
}

// ParseTSBK splits a 10-byte (post-FEC) TSBK payload into its fields.
func ParseTSBK(payload []byte) (TSBK, bool) {
	if len(payload) < 10 {
		return TSBK{}, false
	}
	return TSBK{
		Opcode:  payload[0] & 0x3F,
		MFID:    payload[1],
		Payload: append([]byte(nil), payload[2:10]...),
	}, true
}

// Opcodes this package dispatches on directly; any other opcode is
// passed through as a raw TSBK for a higher layer to interpret.
const (
	OpcodeNetStsBcst      = 0x3B
	OpcodeGroupVoiceGrant = 0x40
	OpcodeUUVoiceGrant    = 0x44
	OpcodeGroupVoiceUpdExp = 0x44 // LCW context: same opcode number, different PDU class
)

// GroupGrant is the decoded result of a Group Voice Channel Update –
// Explicit LCW (format 0x44), gated on retune policy per spec.md §4.5.
type GroupGrant struct {
	Channel uint16
	SvcBits byte
	TG      uint16
	Src     uint32
}

// GrantDiagnostic carries the outcome of attempting a channel->frequency
// resolution for a grant: Frequency/OK on success, Diagnostic set and
// no retune attempted on failure (spec.md §4.5's "must not cause a
// retune" requirement for unseeded/undefined IDEN entries).
type GrantDiagnostic struct {
	Frequency  uint64
	OK         bool
	Diagnostic string
}

// ResolveGrant looks up a grant's channel against the system's IDEN
// table without ever retuning on failure.
func ResolveGrant(table *p25.IdenTable, grant GroupGrant) GrantDiagnostic {
	freq, ok := table.ChannelToFrequency(grant.Channel)
	if !ok {
		return GrantDiagnostic{Diagnostic: "ignoring invalid channel->freq"}
	}
	return GrantDiagnostic{Frequency: freq, OK: true}
}

// svc bit positions within a grant's SvcBits byte.
const (
	svcBitEncrypted = 1 << 6
	svcBitPacket    = 1 << 5
)

// ForwardPolicy gates whether packet/encrypted-tagged traffic in a
// grant is allowed through, per spec.md §4.5: both are blocked by
// default and only forwarded when the matching policy flag is set.
type ForwardPolicy struct {
	ForwardPacket    bool
	ForwardEncrypted bool
}

// Allowed reports whether a grant should be acted on given svc bits and
// policy.
func (p ForwardPolicy) Allowed(svcBits byte) bool {
	if svcBits&svcBitEncrypted != 0 && !p.ForwardEncrypted {
		return false
	}
	if svcBits&svcBitPacket != 0 && !p.ForwardPacket {
		return false
	}
	return true
}
