// Package dpmr implements minimal dPMR frame classification across its
// four named sync variants (dPMR1-4, per spec.md §4.4/§6), each
// identifying a distinct slot-type (header/voice/data/last-frame),
// grounded on the same small-struct shape internal/protocol/dmr's burst
// FSM uses, since no teacher repo implements dPMR directly.
package dpmr

import "github.com/dbehnke/dsd-go/internal/slicer"

// SlotType is the frame role one of the four dPMR sync variants
// identifies.
type SlotType int

const (
	SlotHeader SlotType = iota
	SlotVoice
	SlotData
	SlotLastFrame
	SlotUnknown
)

// ClassifySync maps a latched dPMR synctype to its slot type.
func ClassifySync(st slicer.SyncType) SlotType {
	switch st {
	case slicer.SyncDPMR1:
		return SlotHeader
	case slicer.SyncDPMR2:
		return SlotVoice
	case slicer.SyncDPMR3:
		return SlotData
	case slicer.SyncDPMR4:
		return SlotLastFrame
	default:
		return SlotUnknown
	}
}
