package dmr

import "testing"

func TestSlotBurstVoiceLifecycle(t *testing.T) {
	s := NewSlotBurst()
	if s.State != BurstIdle {
		t.Fatalf("new slot burst state = %d, want %d", s.State, BurstIdle)
	}

	s.OnVoiceSync()
	if s.State != BurstVoice {
		t.Fatalf("after OnVoiceSync state = %d, want %d", s.State, BurstVoice)
	}

	s.OnVoiceEnd()
	if s.State != BurstVoiceGrace {
		t.Fatalf("after OnVoiceEnd state = %d, want %d", s.State, BurstVoiceGrace)
	}

	s.Tick()
	if s.State != BurstIdle {
		t.Fatalf("after Tick from grace state = %d, want %d", s.State, BurstIdle)
	}
}

func TestSlotBurstResetForcesIdle(t *testing.T) {
	s := NewSlotBurst()
	s.OnVoiceSync()
	s.Reset()
	if s.State != BurstIdle {
		t.Fatalf("after Reset state = %d, want %d", s.State, BurstIdle)
	}
}

func TestSlotBurstTickNoOpOutsideGrace(t *testing.T) {
	s := NewSlotBurst()
	s.OnVoiceSync()
	s.Tick()
	if s.State != BurstVoice {
		t.Fatalf("Tick during voice should not change state, got %d", s.State)
	}
}
