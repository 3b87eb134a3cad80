package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/dbehnke/dsd-go/pkg/logger"
)

// Snapshot is the whole-state copy a UI reader obtains through
// publish/request-redraw, never a partial view mid-write.
type Snapshot struct {
	Time    time.Time
	Slot0   []Event
	Slot1   []Event
	Counter Counters
}

// Publisher lets the decode path push a fresh Snapshot and lets a UI
// reader request (and block briefly for) the next one, mirroring
// spec.md §4.8's "publish/request-redraw" interface.
type Publisher struct {
	mu       sync.RWMutex
	current  Snapshot
	redraw   chan struct{}
	log      *logger.Logger
}

// NewPublisher builds a Publisher with an initial empty snapshot.
func NewPublisher(log *logger.Logger) *Publisher {
	return &Publisher{redraw: make(chan struct{}, 1), log: log}
}

// Publish stores a new snapshot and wakes any pending RequestRedraw
// waiter.
func (p *Publisher) Publish(s Snapshot) {
	p.mu.Lock()
	p.current = s
	p.mu.Unlock()

	select {
	case p.redraw <- struct{}{}:
	default:
	}
}

// Current returns the most recently published snapshot immediately,
// without waiting.
func (p *Publisher) Current() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// RequestRedraw blocks until a new snapshot has been published, the
// context is cancelled, or the deadline elapses — whichever is first —
// then returns the latest snapshot.
func (p *Publisher) RequestRedraw(ctx context.Context) Snapshot {
	select {
	case <-p.redraw:
	case <-ctx.Done():
		if p.log != nil {
			p.log.Debug("request-redraw cancelled before a new snapshot arrived")
		}
	}
	return p.Current()
}
