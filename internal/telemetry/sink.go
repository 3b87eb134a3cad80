package telemetry

import "github.com/dbehnke/dsd-go/pkg/logger"

// EventSink implements internal/iohook.TelemetryPublisher's narrow
// PublishEvent(slot, line) signature by logging each line, for call
// sites (protocol decoders, trunking state machines) that only have the
// already composed canonical text line, not a structured Event. It does
// not append to History. Structured
// Event appends from the demod loop itself go directly through
// History.Append, since the full Event record carries fields
// PublishEvent's string-only signature discards.
type EventSink struct {
	log *logger.Logger
}

// NewEventSink builds an EventSink that logs each published line.
func NewEventSink(log *logger.Logger) *EventSink {
	return &EventSink{log: log}
}

// PublishEvent implements internal/iohook.TelemetryPublisher.
func (s *EventSink) PublishEvent(slot int, line string) {
	if s.log == nil {
		return
	}
	s.log.Info("telemetry event", logger.Int("slot", slot), logger.String("line", line))
}
