package telemetry

import "testing"

func TestEventSinkPublishEventDoesNotPanicWithNilLogger(t *testing.T) {
	s := NewEventSink(nil)
	s.PublishEvent(0, "DMR TGT: 1; SRC: 2; CC: 0; ;;")
}
