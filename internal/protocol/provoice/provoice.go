// Package provoice implements ProVoice/EDACS classification: the
// long-sync conventional path only. Grounded on the same small-struct
// classification shape internal/protocol/dpmr uses, since no teacher
// repo implements ProVoice/EDACS directly.
package provoice

import "github.com/dbehnke/dsd-go/internal/slicer"

// ShortSyncSupported records the Open Question decision: the
// conventional short-sync pattern (gated behind a build-time switch in
// the distillation's source material) is not implemented — only the
// default long-pattern path is. A build that needs the short pattern
// gets ErrShortSyncUnsupported rather than a guessed pattern.
const ShortSyncSupported = false

// ErrShortSyncUnsupported is returned by any call site that would need
// the unimplemented short-sync pattern.
type ErrShortSyncUnsupported struct{}

func (ErrShortSyncUnsupported) Error() string {
	return "provoice: short-sync conventional pattern is not implemented (long-pattern path only)"
}

// Kind distinguishes ProVoice, ProVoice-EA, and EDACS (including its
// dotting preamble) sync variants.
type Kind int

const (
	KindUnknown Kind = iota
	KindProVoice
	KindProVoiceEA
	KindEDACS
	KindEDACSDotting
)

// ClassifySync maps a latched synctype to its ProVoice/EDACS Kind.
func ClassifySync(st slicer.SyncType) Kind {
	switch st {
	case slicer.SyncProVoice:
		return KindProVoice
	case slicer.SyncProVoiceEA:
		return KindProVoiceEA
	case slicer.SyncEDACS:
		return KindEDACS
	case slicer.SyncEDACSDotting:
		return KindEDACSDotting
	default:
		return KindUnknown
	}
}

// RequireShortSync returns ErrShortSyncUnsupported; call sites that
// would otherwise silently fall back to the long pattern use this to
// surface the unsupported-feature diagnostic explicitly.
func RequireShortSync() error {
	if !ShortSyncSupported {
		return ErrShortSyncUnsupported{}
	}
	return nil
}
