// Package dispatch implements the central protocol dispatcher spec.md
// §4.5 describes: a static ordered table of per-protocol handlers, each
// presenting a uniform Matches/HandleFrame interface, falling back to
// P25 Phase 1 when nothing matches (preserving the source's historical
// behavior per §4.5).
package dispatch

import "github.com/dbehnke/dsd-go/internal/slicer"

// Options carries the runtime policy flags frame handlers consult
// (retune-enabled, packet/encrypted-forwarding policy, PDU-JSON gate,
// etc.) — the capability-interface surface spec.md §9 calls for in place
// of the source's global option struct.
type Options struct {
	RetuneEnabled     bool
	ForwardPacketBits bool
	ForwardEncrypted  bool
	PDUJSONEnabled    bool
}

// Result is a terminal outcome from one HandleFrame call.
type Result struct {
	VoiceFrameEmitted bool
	SignalingDecoded  bool
	Dropped           bool
	Diagnostic        string
}

// Handler is the uniform per-protocol interface spec.md §4.5 names.
type Handler interface {
	Name() string
	Matches(synctype slicer.SyncType) bool
	HandleFrame(opts *Options, bits []int) Result
}

// Dispatcher holds the static ordered handler table.
type Dispatcher struct {
	handlers []Handler
	fallback Handler
}

// NewDispatcher builds a dispatcher over handlers in priority order, with
// fallback used when no handler's Matches reports true.
func NewDispatcher(fallback Handler, handlers ...Handler) *Dispatcher {
	return &Dispatcher{handlers: handlers, fallback: fallback}
}

// Dispatch scans the handler table in order and runs the first match's
// HandleFrame, or the fallback's if nothing matches.
func (d *Dispatcher) Dispatch(synctype slicer.SyncType, opts *Options, bits []int) Result {
	for _, h := range d.handlers {
		if h.Matches(synctype) {
			return h.HandleFrame(opts, bits)
		}
	}
	if d.fallback != nil {
		return d.fallback.HandleFrame(opts, bits)
	}
	return Result{Dropped: true, Diagnostic: "no handler and no fallback configured"}
}
