// Package iohook defines the capability interfaces the decoder core
// consumes rather than owns: tuner control, vocoder output, metrics
// recording, and telemetry publication. Keeping these as narrow
// interfaces here (rather than importing internal/trunking,
// internal/audiopipeline, etc. directly into the protocol packages)
// is what lets internal/protocol/p25 and internal/protocol/dmr stay
// decoupled from any particular tuner or audio backend.
package iohook

// Tuner is the capability internal/trunking's state machines call
// through to retune hardware or return to a control channel. It is
// the same shape as internal/trunking.TunerHook; this package is
// where any component OUTSIDE trunking that also needs to request a
// tune (e.g. a CLI "force channel" command) should depend, so trunking
// itself doesn't become the canonical import path for the interface.
type Tuner interface {
	Tune(freqHz uint64)
	ReturnToCC()
}

// VocoderSink receives decoded vocoder frames (AMBE/IMBE codeword
// bits) for playback or re-encoding, decoupling internal/protocol's
// frame decoders from any particular vocoder implementation.
type VocoderSink interface {
	WriteFrame(codewordBits []byte) error
}

// MetricsRecorder is the narrow surface internal/protocol and
// internal/trunking call to record counters without depending on
// pkg/metrics' Prometheus registration machinery directly.
type MetricsRecorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveGauge(name string, value float64, labels map[string]string)
}

// TelemetryPublisher is the narrow surface protocol/trunking code
// calls to hand off a finished Event without importing
// internal/telemetry's full Publisher/History machinery.
type TelemetryPublisher interface {
	PublishEvent(slot int, line string)
}
