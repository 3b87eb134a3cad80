package telemetry

import (
	"fmt"

	"github.com/dbehnke/dsd-go/internal/protocol/dmr"
)

// GPSReport is the telemetry-facing view of a decoded LRRP position
// report, flattened out of dmr.LRRPReport's precedence-ordered kind
// so callers don't need to import the protocol package just to print
// a location line.
type GPSReport struct {
	Src       uint32
	Lat       float64
	Lon       float64
	HasRadius bool
	RadiusM   float64

	HasVelocity bool
	Speed       float64 // in the unit passed to DecodeGPSEvent
	HeadingDeg  float64
}

// DecodeGPSEvent decodes an LRRP payload and, on success, renders it
// as a one-line telemetry string plus the flattened report. unit
// controls how the SPEED field is rendered (spec.md §8 property 9:
// "decoded speed expressed as the configured unit"). Unknown tags
// inside the payload never abort the decode (dmr.DecodeLRRP's
// desync-resistant token walk); a hard parse failure (truncated
// payload before any position token) is the only error case.
func DecodeGPSEvent(src uint32, payload []byte, unit dmr.SpeedUnit) (GPSReport, string, error) {
	rpt, err := dmr.DecodeLRRP(payload)
	if err != nil {
		return GPSReport{}, "", fmt.Errorf("decode LRRP payload: %w", err)
	}

	report := GPSReport{
		Src:         src,
		Lat:         float64(rpt.LatitudeE7) / 1e7,
		Lon:         float64(rpt.LongitudeE7) / 1e7,
		HasRadius:   rpt.Kind == dmr.LRRPCircle2D || rpt.Kind == dmr.LRRPCircle3D,
		RadiusM:     float64(rpt.Radius),
		HasVelocity: rpt.HasVelocity,
	}
	if rpt.HasVelocity {
		report.Speed = dmr.ConvertSpeed(rpt.SpeedTenthsKmh, unit)
		report.HeadingDeg = rpt.HeadingDeg
	}

	line := fmt.Sprintf("GPS SRC: %d; LAT: %.6f; LON: %.6f;", src, report.Lat, report.Lon)
	if report.HasRadius {
		line += fmt.Sprintf(" RADIUS: %.1fm;", report.RadiusM)
	}
	if report.HasVelocity {
		line += fmt.Sprintf(" SPEED: %.1f; HEADING: %.1f;", report.Speed, report.HeadingDeg)
	}
	return report, line, nil
}
