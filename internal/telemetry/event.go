// Package telemetry implements the canonical call-event record and
// history ring, LRRP/GPS surfacing, the publish/request-redraw
// snapshot interface, and pluggable per-call export.
package telemetry

import (
	"fmt"
	"time"
)

// Event is one decoded-call record in the canonical text format:
// "YYYY-MM-DD HH:MM:SS PROTO TGT: <tg>; SRC: <src>; CC: <cc>; <flags>; <tx flag>;"
type Event struct {
	Time      time.Time
	Protocol  string
	TG        uint32
	Src       uint32
	CC        uint64
	Flags     string
	TXFlag    string
	Slot      int
	WAVPath   string
}

// canonicalLayout matches spec.md's literal event-text timestamp
// format.
const canonicalLayout = "2006-01-02 15:04:05"

// String renders the canonical event text.
func (e Event) String() string {
	return fmt.Sprintf("%s %s TGT: %d; SRC: %d; CC: %d; %s; %s;",
		e.Time.Format(canonicalLayout), e.Protocol, e.TG, e.Src, e.CC, e.Flags, e.TXFlag)
}

// CompactTime rewrites a canonical event line's leading
// "YYYY-MM-DD HH:MM:SS" date+time prefix down to just "HH:MM:SS", for
// compact single-line display. Lines that don't start with the
// canonical date prefix are returned unchanged.
func CompactTime(line string) string {
	const dateLen = len("2006-01-02 ")
	if len(line) < dateLen+len("15:04:05") {
		return line
	}
	datePart := line[:10]
	if _, err := time.Parse("2006-01-02", datePart); err != nil {
		return line
	}
	if line[10] != ' ' {
		return line
	}
	return line[dateLen:]
}
