package dmr

import (
	"fmt"
	"time"
)

// LRRPPositionKind ranks the position-token precedence spec.md §8
// property 9 names: CIRCLE_2D > CIRCLE_3D > POINT_2D > POINT_3D.
type LRRPPositionKind int

const (
	LRRPNone LRRPPositionKind = iota
	LRRPPoint3D
	LRRPPoint2D
	LRRPCircle3D
	LRRPCircle2D
)

const (
	lrrpTokenPoint2D   = 0x0A
	lrrpTokenPoint3D   = 0x0B
	lrrpTokenCircle2D  = 0x0C
	lrrpTokenCircle3D  = 0x0D
	lrrpTokenVelocity  = 0x0E // SPEED (2 bytes, tenths of km/h) + HEADING (2 bytes, tenths of a degree)
	lrrpTokenTimestamp = 0x09
)

// SpeedUnit selects the unit a decoded LRRP SPEED field is converted
// to, per spec.md §8 property 9's "decoded speed expressed as the
// configured unit."
type SpeedUnit int

const (
	SpeedKmh SpeedUnit = iota
	SpeedMph
	SpeedKnots
)

// ConvertSpeed converts a raw SPEED field (tenths of km/h, the wire
// unit) into the given unit.
func ConvertSpeed(rawTenthsKmh uint16, unit SpeedUnit) float64 {
	kmh := float64(rawTenthsKmh) / 10.0
	switch unit {
	case SpeedMph:
		return kmh * 0.621371
	case SpeedKnots:
		return kmh * 0.539957
	default:
		return kmh
	}
}

// LRRPReport is the decoded content of one LRRP location-response PDU.
type LRRPReport struct {
	Kind        LRRPPositionKind
	LatitudeE7  int32
	LongitudeE7 int32
	Radius      uint32 // meters, CIRCLE_* only
	Timestamp   time.Time

	HasVelocity    bool
	SpeedTenthsKmh uint16  // raw wire unit; convert with ConvertSpeed
	HeadingDeg     float64 // 0-359.9 degrees
}

// DecodeLRRP walks a fixed-length token stream without desyncing: each
// token is (tag byte, fixed-size payload), and an unrecognized tag still
// advances by its declared length class rather than losing sync (spec.md
// §8 property 9: "a malformed or unknown token must not desync the
// remaining token stream").
func DecodeLRRP(payload []byte) (LRRPReport, error) {
	var report LRRPReport
	best := LRRPNone

	i := 0
	for i < len(payload) {
		tag := payload[i]
		i++
		length, known := lrrpTokenLength(tag)
		if i+length > len(payload) {
			break
		}
		body := payload[i : i+length]
		i += length

		switch tag {
		case lrrpTokenPoint2D:
			if best < LRRPPoint2D {
				report.LatitudeE7, report.LongitudeE7 = decodeLatLon(body)
				best = LRRPPoint2D
			}
		case lrrpTokenPoint3D:
			if best < LRRPPoint3D {
				report.LatitudeE7, report.LongitudeE7 = decodeLatLon(body)
				best = LRRPPoint3D
			}
		case lrrpTokenCircle2D:
			if best < LRRPCircle2D {
				report.LatitudeE7, report.LongitudeE7 = decodeLatLon(body)
				if len(body) >= 9 {
					report.Radius = beUint32(body[8:])
				}
				best = LRRPCircle2D
			}
		case lrrpTokenCircle3D:
			if best < LRRPCircle3D {
				report.LatitudeE7, report.LongitudeE7 = decodeLatLon(body)
				if len(body) >= 9 {
					report.Radius = beUint32(body[8:])
				}
				best = LRRPCircle3D
			}
		case lrrpTokenVelocity:
			report.HasVelocity = true
			report.SpeedTenthsKmh = beUint16(body[0:2])
			report.HeadingDeg = float64(beUint16(body[2:4])) / 10.0
		case lrrpTokenTimestamp:
			report.Timestamp = decodeBCDTimestamp(body)
		default:
			_ = known // unknown tag: skip using its declared length class
		}
	}

	report.Kind = best
	if best == LRRPNone {
		return report, fmt.Errorf("lrrp: no position token found")
	}
	return report, nil
}

// DecodeLRRPDatagram locates the LRRP payload inside an IPv4/UDP
// datagram and decodes it. spec.md §4.5 requires honoring the IPv4 IHL
// field (options present, e.g. IHL=6, shift the payload start) and the
// UDP length field (bounding the payload instead of trusting the
// outer buffer's length) to find the LRRP token stream.
func DecodeLRRPDatagram(datagram []byte) (LRRPReport, error) {
	payload, err := ExtractUDPPayload(datagram)
	if err != nil {
		return LRRPReport{}, err
	}
	return DecodeLRRP(payload)
}

// ExtractUDPPayload parses an IPv4 header (honoring a variable IHL,
// i.e. header options) followed by a UDP header (honoring the UDP
// length field rather than assuming the datagram buffer ends exactly
// at the payload) and returns the UDP payload bytes.
func ExtractUDPPayload(datagram []byte) ([]byte, error) {
	if len(datagram) < 20 {
		return nil, fmt.Errorf("lrrp: datagram too short for an IPv4 header")
	}
	versionIHL := datagram[0]
	version := versionIHL >> 4
	if version != 4 {
		return nil, fmt.Errorf("lrrp: unsupported IP version %d", version)
	}
	ihl := int(versionIHL & 0x0F) // header length in 32-bit words, options included
	if ihl < 5 || ihl > 15 {
		return nil, fmt.Errorf("lrrp: invalid IPv4 IHL %d", ihl)
	}
	ipHeaderLen := ihl * 4
	if len(datagram) < ipHeaderLen+8 {
		return nil, fmt.Errorf("lrrp: datagram too short for its IHL=%d header plus a UDP header", ihl)
	}

	protocol := datagram[9]
	if protocol != 17 {
		return nil, fmt.Errorf("lrrp: IP protocol %d is not UDP", protocol)
	}

	udpHeader := datagram[ipHeaderLen : ipHeaderLen+8]
	udpLength := int(beUint16(udpHeader[4:6]))
	if udpLength < 8 {
		return nil, fmt.Errorf("lrrp: invalid UDP length %d", udpLength)
	}
	payloadStart := ipHeaderLen + 8
	payloadEnd := ipHeaderLen + udpLength
	if payloadEnd > len(datagram) {
		return nil, fmt.Errorf("lrrp: UDP length %d exceeds datagram size", udpLength)
	}
	return datagram[payloadStart:payloadEnd], nil
}

// lrrpTokenLength returns the fixed payload length for a known tag, and
// a conservative default for anything unrecognized so the token stream
// keeps advancing rather than desyncing.
func lrrpTokenLength(tag byte) (int, bool) {
	switch tag {
	case lrrpTokenPoint2D:
		return 8, true
	case lrrpTokenPoint3D:
		return 11, true
	case lrrpTokenCircle2D:
		return 12, true
	case lrrpTokenCircle3D:
		return 15, true
	case lrrpTokenVelocity:
		return 4, true
	case lrrpTokenTimestamp:
		return 5, true
	default:
		return 4, false
	}
}

func decodeLatLon(body []byte) (int32, int32) {
	if len(body) < 8 {
		return 0, 0
	}
	lat := int32(beUint32(body[0:4]))
	lon := int32(beUint32(body[4:8]))
	return lat, lon
}

func beUint32(b []byte) uint32 {
	var v uint32
	for _, c := range b[:4] {
		v = v<<8 | uint32(c)
	}
	return v
}

func beUint16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}

// lrrpMinValidYear is the earliest calendar year this decoder accepts
// out of a timestamp token. Anything before it is treated the same as
// a corrupt BCD field.
const lrrpMinValidYear = 2000

// decodeBCDTimestamp parses a packed-BCD YY-MM-DD-HH-mm timestamp
// (year as a 2-digit BCD offset from 2000), falling back to the
// current system time when any decoded field — including the year —
// falls outside valid range (spec.md §8 property 9: "a decoded year
// outside [current_year_min, current_year_max] never appears in the
// LRRP file").
func decodeBCDTimestamp(body []byte) time.Time {
	if len(body) < 5 {
		return time.Now()
	}
	now := time.Now()

	year := lrrpMinValidYear + bcdByte(body[0])
	month := bcdByte(body[1])
	day := bcdByte(body[2])
	hour := bcdByte(body[3])
	minute := bcdByte(body[4])

	if year < lrrpMinValidYear || year > now.Year() ||
		month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 {
		return now
	}

	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
}

func bcdByte(b byte) int {
	hi := int(b >> 4)
	lo := int(b & 0x0F)
	if hi > 9 || lo > 9 {
		return 199 // forces every calendar-range check (year, month, day, ...) to fail
	}
	return hi*10 + lo
}
