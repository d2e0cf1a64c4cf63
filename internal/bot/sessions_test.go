package bot

import (
	"testing"

	"github.com/siavashv/brokerage_intake_bot/internal/flow"
)

func TestSessionLifecycle(t *testing.T) {
	m := NewSessionManager()

	if _, ok := m.Get(42); ok {
		t.Fatal("expected no session before first contact")
	}

	m.Set(42, flow.StagePhone)

	stage, ok := m.Get(42)
	if !ok || stage != flow.StagePhone {
		t.Fatalf("Get = %s, %v; want %s, true", stage, ok, flow.StagePhone)
	}

	m.Set(42, flow.StageReason)

	if stage, _ := m.Get(42); stage != flow.StageReason {
		t.Fatalf("stage = %s, want %s", stage, flow.StageReason)
	}

	m.Clear(42)

	if _, ok := m.Get(42); ok {
		t.Fatal("expected session to be gone after Clear")
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	m := NewSessionManager()

	m.Set(1, flow.StageName)
	m.Set(2, flow.StageReason)
	m.Clear(1)

	if _, ok := m.Get(1); ok {
		t.Fatal("chat 1 should be cleared")
	}
	if stage, _ := m.Get(2); stage != flow.StageReason {
		t.Fatalf("chat 2 stage = %s, want %s", stage, flow.StageReason)
	}
}
