// Package flow is the screen navigation state machine.
package flow

import (
	"errors"
	"fmt"
	"slices"
)

// Screen identifies one page of the flow.
type Screen string

const (
	Landing  Screen = "landing"
	Profile  Screen = "profile"
	Menu     Screen = "menu"
	Bookings Screen = "bookings"
	Dietary  Screen = "dietary"
	Thanks   Screen = "thanks"
)

// Screens lists every screen in flow order.
var Screens = []Screen{Landing, Profile, Menu, Bookings, Dietary, Thanks}

// ErrNotOnScreen is returned by AdvanceIfValid when from is not current.
var ErrNotOnScreen = errors.New("flow: not on screen")

var (
	forward = map[Screen]Screen{
		Landing:  Profile,
		Profile:  Menu,
		Menu:     Bookings,
		Bookings: Dietary,
		Dietary:  Thanks,
		Thanks:   Menu,
	}
	back = map[Screen]Screen{
		Profile:  Landing,
		Menu:     Profile,
		Bookings: Menu,
		Dietary:  Bookings,
		Thanks:   Dietary,
	}
)

// Valid reports whether s is a known screen.
func (s Screen) Valid() bool {
	return slices.Contains(Screens, s)
}

// Forward is where s goes on next/submit. thanks loops back to menu.
func Forward(s Screen) (Screen, bool) {
	to, ok := forward[s]
	return to, ok
}

// Back is the fixed screen reached by going back from s. landing has none.
func Back(s Screen) (Screen, bool) {
	to, ok := back[s]
	return to, ok
}

// Navigator holds the single active screen. There is no history; going back
// is an explicit transition to a fixed screen.
type Navigator struct {
	current Screen
}

// New starts at landing.
func New() *Navigator {
	return &Navigator{current: Landing}
}

func (n *Navigator) Current() Screen { return n.current }

// GoTo replaces the current screen unconditionally.
func (n *Navigator) GoTo(s Screen) error {
	if !s.Valid() {
		return fmt.Errorf("flow: unknown screen %q", s)
	}
	n.current = s
	return nil
}

// AdvanceIfValid runs validate and, when it succeeds, moves from `from` to
// its forward screen. A nil validate always succeeds. The validator's error
// is returned unchanged and the screen stays put.
func (n *Navigator) AdvanceIfValid(from Screen, validate func() error) error {
	if n.current != from {
		return fmt.Errorf("%w: at %s, not %s", ErrNotOnScreen, n.current, from)
	}
	to, ok := Forward(from)
	if !ok {
		return fmt.Errorf("flow: no forward transition from %q", from)
	}
	if validate != nil {
		if err := validate(); err != nil {
			return err
		}
	}
	n.current = to
	return nil
}

// Back moves to the fixed previous screen. It reports false on landing.
func (n *Navigator) Back() bool {
	to, ok := back[n.current]
	if !ok {
		return false
	}
	n.current = to
	return true
}
