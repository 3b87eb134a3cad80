package trunking

import (
	"testing"
	"time"
)

type captureHook struct {
	tuneCalls  []uint64
	returnCalls int
}

func (h *captureHook) Tune(freq uint64) { h.tuneCalls = append(h.tuneCalls, freq) }
func (h *captureHook) ReturnToCC()      { h.returnCalls++ }

func TestGrantTrustedCallsTunerOnce(t *testing.T) {
	hook := &captureHook{}
	sm := NewSM(hook, Policy{Hangtime: time.Minute})

	ok := sm.Grant(GrantEvent{Freq: 852000000, FreqOK: true, Trust: TrustConfirmed, Slot: 0})
	if !ok {
		t.Fatalf("expected grant to succeed")
	}
	if len(hook.tuneCalls) != 1 || hook.tuneCalls[0] != 852000000 {
		t.Fatalf("tuneCalls = %v, want exactly one call to 852000000", hook.tuneCalls)
	}
	if sm.VoiceChannel(0) != 852000000 {
		t.Errorf("VoiceChannel(0) = %d, want 852000000", sm.VoiceChannel(0))
	}
	if sm.State != StateTuned {
		t.Errorf("State = %d, want StateTuned", sm.State)
	}
}

func TestGrantUntrustedOffCCDoesNotTune(t *testing.T) {
	hook := &captureHook{}
	sm := NewSM(hook, Policy{})
	ok := sm.Grant(GrantEvent{Freq: 852000000, FreqOK: true, Trust: TrustLearned, OffCC: true, Slot: 0})
	if ok {
		t.Fatalf("expected grant to be refused for an untrusted off-CC mapping")
	}
	if len(hook.tuneCalls) != 0 {
		t.Fatalf("expected no tuner call, got %v", hook.tuneCalls)
	}
}

func TestGrantInvalidFrequencyDoesNotTune(t *testing.T) {
	hook := &captureHook{}
	sm := NewSM(hook, Policy{})
	ok := sm.Grant(GrantEvent{FreqOK: false, Slot: 0})
	if ok || len(hook.tuneCalls) != 0 {
		t.Fatalf("expected invalid channel->frequency mapping to never retune")
	}
}

func TestGrantBlockedByEncryptedPolicy(t *testing.T) {
	hook := &captureHook{}
	sm := NewSM(hook, Policy{ForwardEncrypted: false})
	ok := sm.Grant(GrantEvent{Freq: 1, FreqOK: true, Trust: TrustConfirmed, SvcBits: svcEncrypted, Slot: 0})
	if ok {
		t.Fatalf("expected grant blocked by encrypted policy")
	}
}

func TestReleaseDefersWhileSlotActive(t *testing.T) {
	hook := &captureHook{}
	sm := NewSM(hook, Policy{Hangtime: time.Hour})
	sm.Grant(GrantEvent{Freq: 1, FreqOK: true, Trust: TrustConfirmed, Slot: 0})
	sm.VoiceSync(0)

	sm.Release()
	if hook.returnCalls != 0 {
		t.Fatalf("expected Release to defer while slot 0 is active")
	}
	if sm.State != StateTuned {
		t.Errorf("State = %d, want StateTuned (deferred)", sm.State)
	}
}

func TestReleaseReturnsToCCWhenIdleAndHangtimeElapsed(t *testing.T) {
	hook := &captureHook{}
	sm := NewSM(hook, Policy{Hangtime: 0})
	sm.Grant(GrantEvent{Freq: 1, FreqOK: true, Trust: TrustConfirmed, Slot: 0})

	sm.Release()
	if hook.returnCalls != 1 {
		t.Fatalf("returnCalls = %d, want exactly 1", hook.returnCalls)
	}
	if sm.Tuned() {
		t.Errorf("expected Tuned()=false after return-to-CC")
	}
	if sm.VoiceChannel(0) != 0 {
		t.Errorf("expected VoiceChannel(0)=0 after return-to-CC")
	}
}

func TestTickReturnsToCCWhenHangtimeElapsed(t *testing.T) {
	hook := &captureHook{}
	sm := NewSM(hook, Policy{Hangtime: 0})
	sm.Grant(GrantEvent{Freq: 1, FreqOK: true, Trust: TrustConfirmed, Slot: 0})

	sm.Tick()
	if hook.returnCalls != 1 {
		t.Fatalf("returnCalls = %d, want exactly 1", hook.returnCalls)
	}
	if sm.State != StateOnCC {
		t.Errorf("State = %d, want StateOnCC", sm.State)
	}
}

func TestTickNoOpWhenNotTuned(t *testing.T) {
	hook := &captureHook{}
	sm := NewSM(hook, Policy{})
	sm.Tick()
	if hook.returnCalls != 0 {
		t.Fatalf("expected Tick to be a no-op while ON_CC")
	}
}

func TestNeighborUpdateSkipsZeroAndCurrentCC(t *testing.T) {
	sm := NewSM(&captureHook{}, Policy{})
	sm.NeighborUpdate([]uint64{0, 851000000, 852000000}, 851000000)
	got := sm.Neighbors().List()
	if len(got) != 1 || got[0] != 852000000 {
		t.Fatalf("Neighbors = %v, want [852000000]", got)
	}
}

func TestNeighborRingFIFORollover(t *testing.T) {
	r := NewNeighborRing(2)
	r.Add(1)
	r.Add(2)
	r.Add(3)
	got := r.List()
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Fatalf("List() = %v, want [2 3] after FIFO rollover at capacity 2", got)
	}
}
