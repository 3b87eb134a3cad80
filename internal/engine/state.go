// Package engine wires the component packages (C1-C9) into one
// running decoder: a producer goroutine feeding internal/runtime.Ring,
// a demod goroutine owning State and driving internal/protocol/
// dispatch, an audio goroutine consuming gated/AGC'd samples, and the
// process's main goroutine acting as the UI thread reading published
// telemetry snapshots and posting commands on runtime.CommandQueue.
// Grounded on the teacher's cmd/dmr-nexus/main.go wiring shape
// (construct components, start goroutines under a context, wait for
// shutdown signal, tear down) generalized from a DMR-repeater process
// to this decoder's component set.
package engine

import (
	"github.com/dbehnke/dsd-go/internal/protocol/dispatch"
	"github.com/dbehnke/dsd-go/internal/runtime"
	"github.com/dbehnke/dsd-go/internal/slicer"
	"github.com/dbehnke/dsd-go/internal/telemetry"
	"github.com/dbehnke/dsd-go/internal/trunking"
)

// State aggregates the owned records SPEC_FULL.md §3 names into one
// long-lived value, each sub-record keeping single-writer ownership:
// the demod goroutine is the only writer of all of these.
type State struct {
	Calibration *slicer.Calibration
	SyncHistory []int

	DMRSlots [2]trunking.SlotState

	Counters telemetry.Counters
	History  *telemetry.History

	Extensions *runtime.ExtensionTable
}

// NewState builds a State with empty sub-records, ready for the demod
// goroutine to drive.
func NewState(calibrationWindow int) *State {
	return &State{
		Calibration: slicer.NewCalibration(calibrationWindow),
		History:     telemetry.NewHistory(),
		Extensions:  runtime.NewExtensionTable(),
	}
}

// dispatchOptionsFrom builds a dispatch.Options from the decoder
// policy flags State's owner resolves from config once at startup.
func dispatchOptionsFrom(retune, forwardPacket, forwardEncrypted, pduJSON bool) *dispatch.Options {
	return &dispatch.Options{
		RetuneEnabled:     retune,
		ForwardPacketBits: forwardPacket,
		ForwardEncrypted:  forwardEncrypted,
		PDUJSONEnabled:    pduJSON,
	}
}
