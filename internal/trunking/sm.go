// Package trunking implements the shared trunking state machine core
// DMR Tier III and P25 both use: grant intake, gated retune, hangtime,
// neighbor-candidate ring, and return-to-control-channel. Grounded on
// the teacher's pkg/bridge/timer.go (TimerManager's map-keyed,
// Stop/AfterFunc timeout shape, generalized here to a monotonic-clock
// hangtime check driven by an explicit tick rather than a goroutine
// timer, since the decoder core's tick cadence is caller-driven) and
// pkg/bridge/router.go's capability-interface injection style (a small
// hook interface the SM calls rather than owning the I/O itself).
package trunking

import "time"

// State is one of the three shared trunking states spec.md §6 names.
type State int

const (
	StateOnCC State = iota
	StateTuned
	StateReleasing
)

// IdenTrust is the trust level spec.md §6 assigns a learned
// channel->frequency mapping.
type IdenTrust int

const (
	TrustUnknown IdenTrust = iota
	TrustLearned
	TrustConfirmed
)

// TunerHook is the capability interface the SM calls to retune the
// receiver; tests construct the SM with a capturing implementation
// instead of a real tuner (spec.md §9's capability-interface redesign
// flag).
type TunerHook interface {
	Tune(freqHz uint64)
	ReturnToCC()
}

// Policy gates which grants are allowed to retune.
type Policy struct {
	ForwardPacket    bool
	ForwardEncrypted bool
	Hangtime         time.Duration
	VCGrace          time.Duration
}

// GrantEvent is a group or individual voice-channel grant.
type GrantEvent struct {
	Channel  uint16
	Freq     uint64
	FreqOK   bool
	Trust    IdenTrust
	OffCC    bool
	SvcBits  byte
	Slot     int
	TG       uint16
	Src      uint32
}

const (
	svcEncrypted = 1 << 6
	svcPacket    = 1 << 5
)

// SlotState tracks one slot's voice activity for hangtime purposes.
type SlotState struct {
	VoiceActive  bool
	LastVoiceAt  time.Time
}

// SM is the shared trunking state machine.
type SM struct {
	State         State
	hook          TunerHook
	policy        Policy
	slots         [2]SlotState
	voiceChannel  [2]uint64
	tuned         bool
	tuneCount     int
	neighbors     *NeighborRing
	now           func() time.Time
}

// NewSM builds an SM in the ON_CC state.
func NewSM(hook TunerHook, policy Policy) *SM {
	return &SM{
		State:     StateOnCC,
		hook:      hook,
		policy:    policy,
		neighbors: NewNeighborRing(16),
		now:       time.Now,
	}
}

// TuneCount reports how many times the tuner hook's Tune has been
// called, for test assertions.
func (s *SM) TuneCount() int { return s.tuneCount }

// VoiceChannel reports slot i's currently tuned voice-channel
// frequency (0 if none).
func (s *SM) VoiceChannel(i int) uint64 { return s.voiceChannel[i] }

// Tuned reports whether the SM currently holds a voice-channel tune.
func (s *SM) Tuned() bool { return s.tuned }

// allowedBySvc reports whether a grant's svc bits pass policy gating.
func (s *SM) allowedBySvc(svc byte) bool {
	if svc&svcEncrypted != 0 && !s.policy.ForwardEncrypted {
		return false
	}
	if svc&svcPacket != 0 && !s.policy.ForwardPacket {
		return false
	}
	return true
}

// Grant processes a group or individual grant event per spec.md §6:
// refuse to tune when off-CC with an untrusted mapping, refuse when
// svc policy blocks it, otherwise reset per-slot assembly, tune, and
// transition to TUNED. Returns true iff a tune occurred.
func (s *SM) Grant(ev GrantEvent) bool {
	if !ev.FreqOK {
		return false // invalid channel->frequency mapping: no retune, caller emits diagnostic
	}
	if ev.OffCC && ev.Trust < TrustConfirmed {
		return false
	}
	if !s.allowedBySvc(ev.SvcBits) {
		return false
	}

	s.slots[ev.Slot] = SlotState{}
	s.voiceChannel[ev.Slot] = ev.Freq
	s.hook.Tune(ev.Freq)
	s.tuneCount++
	s.tuned = true
	s.State = StateTuned
	return true
}

// VoiceSync marks a slot as voice-active at the current time.
func (s *SM) VoiceSync(slot int) {
	if slot < 0 || slot >= len(s.slots) {
		return
	}
	s.slots[slot].VoiceActive = true
	s.slots[slot].LastVoiceAt = s.now()
}

// anySlotActiveOrWithinHangtime reports whether any slot is currently
// voice-active, or had voice within the hangtime window.
func (s *SM) anySlotActiveOrWithinHangtime() bool {
	for _, slot := range s.slots {
		if slot.VoiceActive {
			return true
		}
		if !slot.LastVoiceAt.IsZero() && s.now().Sub(slot.LastVoiceAt) < s.policy.Hangtime {
			return true
		}
	}
	return false
}

// Release processes a release event: defers (stays TUNED) if any slot
// is active or within hangtime, otherwise returns to CC.
func (s *SM) Release() {
	if s.anySlotActiveOrWithinHangtime() {
		return
	}
	s.returnToCC()
}

// Tick processes a periodic tick: if TUNED, no slot is active, and the
// hangtime has elapsed, transitions through RELEASING back to ON_CC.
func (s *SM) Tick() {
	if s.State != StateTuned {
		return
	}
	if s.anySlotActiveOrWithinHangtime() {
		return
	}
	s.State = StateReleasing
	s.returnToCC()
}

func (s *SM) returnToCC() {
	s.hook.ReturnToCC()
	s.voiceChannel[0] = 0
	s.voiceChannel[1] = 0
	s.tuned = false
	s.State = StateOnCC
	for i := range s.slots {
		s.slots[i] = SlotState{}
	}
}

// NeighborUpdate folds candidate frequencies into the neighbor ring,
// skipping zero and currentCC entries, per spec.md §6.
func (s *SM) NeighborUpdate(freqs []uint64, currentCC uint64) {
	for _, f := range freqs {
		if f == 0 || f == currentCC {
			continue
		}
		s.neighbors.Add(f)
	}
}

// Neighbors exposes the neighbor ring for inspection/persistence.
func (s *SM) Neighbors() *NeighborRing { return s.neighbors }
