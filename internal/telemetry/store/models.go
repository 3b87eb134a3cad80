// Package store is the opt-in gorm/sqlite-backed call-history and
// CC-candidate ledger, the richer alternative to internal/trunking's
// flat-file cache default (Open Question decision 3).
package store

import "time"

// CallLogEntry is one finalized call: the WAV path plus the event
// fields needed to answer "who talked on what, when" without
// re-parsing the WAV or replaying the decode.
type CallLogEntry struct {
	ID        uint      `gorm:"primarykey"`
	Protocol  string    `gorm:"index;size:16"`
	TG        uint32    `gorm:"index"`
	Src       uint32    `gorm:"index"`
	CC        uint64    `gorm:"index"`
	Slot      int
	StartTime time.Time `gorm:"index"`
	Flags     string    `gorm:"size:64"`
	WAVPath   string    `gorm:"size:512"`
	CreatedAt time.Time
}

// TableName names the call-log table explicitly, matching the
// teacher model convention.
func (CallLogEntry) TableName() string { return "call_log_entries" }

// CCCandidate is one learned control-channel frequency for a given
// system, the sqlite-backed equivalent of internal/trunking's
// flat-file cache entries.
type CCCandidate struct {
	ID        uint   `gorm:"primarykey"`
	System    string `gorm:"index;size:64"` // e.g. "p25:ABCDE:123" or "dmr:4660"
	FreqHz    uint64
	UpdatedAt time.Time
}

// TableName names the CC-candidate table explicitly.
func (CCCandidate) TableName() string { return "cc_candidates" }
