package flow

import (
	"errors"
	"testing"
)

func TestStartsOnLanding(t *testing.T) {
	if got := New().Current(); got != Landing {
		t.Fatalf("expected landing, got %s", got)
	}
}

func TestGoToRejectsUnknownScreen(t *testing.T) {
	n := New()
	if err := n.GoTo("checkout"); err == nil {
		t.Fatalf("expected error for unknown screen")
	}
	if n.Current() != Landing {
		t.Fatalf("screen changed on rejected GoTo")
	}
	if err := n.GoTo(Thanks); err != nil || n.Current() != Thanks {
		t.Fatalf("GoTo(thanks) = %v, current %s", err, n.Current())
	}
}

func TestAdvanceIfValid(t *testing.T) {
	n := New()
	_ = n.GoTo(Profile)

	boom := errors.New("invalid")
	if err := n.AdvanceIfValid(Profile, func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected validator error, got %v", err)
	}
	if n.Current() != Profile {
		t.Fatalf("screen moved on failed validation")
	}

	calls := 0
	if err := n.AdvanceIfValid(Profile, func() error { calls++; return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 || n.Current() != Menu {
		t.Fatalf("calls=%d current=%s", calls, n.Current())
	}
}

func TestAdvanceIfValidChecksCurrentScreen(t *testing.T) {
	n := New()
	called := false
	err := n.AdvanceIfValid(Bookings, func() error { called = true; return nil })
	if !errors.Is(err, ErrNotOnScreen) {
		t.Fatalf("expected ErrNotOnScreen, got %v", err)
	}
	if called {
		t.Fatalf("validator must not run off-screen")
	}
}

func TestTransitionTable(t *testing.T) {
	wantForward := map[Screen]Screen{
		Landing: Profile, Profile: Menu, Menu: Bookings,
		Bookings: Dietary, Dietary: Thanks, Thanks: Menu,
	}
	wantBack := map[Screen]Screen{
		Profile: Landing, Menu: Profile, Bookings: Menu,
		Dietary: Bookings, Thanks: Dietary,
	}
	for _, s := range Screens {
		if to, _ := Forward(s); to != wantForward[s] {
			t.Fatalf("forward(%s) = %s, want %s", s, to, wantForward[s])
		}
		to, ok := Back(s)
		want, has := wantBack[s]
		if ok != has || to != want {
			t.Fatalf("back(%s) = %s,%v want %s,%v", s, to, ok, want, has)
		}
	}
}

func TestBackFromLandingIsNoop(t *testing.T) {
	n := New()
	if n.Back() {
		t.Fatalf("landing has no back transition")
	}
	_ = n.GoTo(Thanks)
	if !n.Back() || n.Current() != Dietary {
		t.Fatalf("thanks should go back to dietary, got %s", n.Current())
	}
}
