package telemetry

import (
	"strings"
	"testing"

	"github.com/dbehnke/dsd-go/internal/protocol/dmr"
)

func TestDecodeGPSEventFormatsPoint2D(t *testing.T) {
	// tag 0x0A (POINT_2D), 8-byte body: lat/lon as big-endian int32 E7 degrees.
	payload := []byte{
		0x0A,
		0x02, 0x25, 0xB1, 0x00, // latitude E7
		0x00, 0xC9, 0x30, 0x80, // longitude E7 (placeholder test values)
	}
	_, line, err := DecodeGPSEvent(42, payload, dmr.SpeedKmh)
	if err != nil {
		t.Fatalf("DecodeGPSEvent error: %v", err)
	}
	if !strings.Contains(line, "SRC: 42;") {
		t.Fatalf("line = %q, want it to contain SRC: 42;", line)
	}
	if !strings.Contains(line, "LAT:") || !strings.Contains(line, "LON:") {
		t.Fatalf("line = %q, want LAT/LON fields", line)
	}
}

func TestDecodeGPSEventFormatsSpeedAndHeadingInConfiguredUnit(t *testing.T) {
	// velocity token (0x0E): speed=1000 (100.0 km/h), heading=2700 (270.0 deg)
	velocity := []byte{0x0E, 0x03, 0xE8, 0x0A, 0x8C}
	point := []byte{0x0A, 0, 0, 0, 1, 0, 0, 0, 1}
	payload := append(velocity, point...)

	report, line, err := DecodeGPSEvent(7, payload, dmr.SpeedMph)
	if err != nil {
		t.Fatalf("DecodeGPSEvent error: %v", err)
	}
	if !report.HasVelocity {
		t.Fatalf("expected HasVelocity")
	}
	if report.Speed < 62.1 || report.Speed > 62.2 {
		t.Errorf("speed = %.3f mph, want ~62.1", report.Speed)
	}
	if !strings.Contains(line, "SPEED:") || !strings.Contains(line, "HEADING:") {
		t.Fatalf("line = %q, want SPEED/HEADING fields", line)
	}
}
