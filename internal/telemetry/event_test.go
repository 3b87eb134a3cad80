package telemetry

import (
	"testing"
	"time"
)

func TestEventCanonicalString(t *testing.T) {
	ev := Event{
		Time:     time.Date(2026, 7, 30, 14, 5, 9, 0, time.UTC),
		Protocol: "DMR",
		TG:       3100,
		Src:      1234567,
		CC:       851000000,
		Flags:    "ENC",
		TXFlag:   "TX",
	}
	want := "2026-07-30 14:05:09 DMR TGT: 3100; SRC: 1234567; CC: 851000000; ENC; TX;"
	if got := ev.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestCompactTimeStripsDatePrefix(t *testing.T) {
	line := "2026-07-30 14:05:09 DMR TGT: 3100; SRC: 1234567; CC: 851000000; ENC; TX;"
	want := "14:05:09 DMR TGT: 3100; SRC: 1234567; CC: 851000000; ENC; TX;"
	if got := CompactTime(line); got != want {
		t.Fatalf("CompactTime() = %q, want %q", got, want)
	}
}

func TestCompactTimeLeavesNonCanonicalLineUnchanged(t *testing.T) {
	line := "not a canonical event line"
	if got := CompactTime(line); got != line {
		t.Fatalf("CompactTime() = %q, want unchanged %q", got, line)
	}
}
