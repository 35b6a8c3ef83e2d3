package core

import "time"

// Button is one of the three physical buttons every shell maps onto.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight

	ButtonCount
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonMiddle:
		return "Middle"
	case ButtonRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// ButtonStates is the held state of every button for one tick.
type ButtonStates [ButtonCount]bool

// Any reports whether any button is held.
func (s ButtonStates) Any() bool {
	for _, down := range s {
		if down {
			return true
		}
	}
	return false
}

// Input tracks button edges and how long the player has been idle.
// The shell sets the current states, the game reads edges during the
// tick and calls Advance once the tick is done.
type Input struct {
	current  ButtonStates
	previous ButtonStates
	idle     time.Duration
}

// Set replaces the held states for the coming tick.
func (in *Input) Set(states ButtonStates) {
	in.current = states
}

// Down reports whether b is held.
func (in *Input) Down(b Button) bool {
	return b < ButtonCount && in.current[b]
}

// Pressed reports whether b went down this tick.
func (in *Input) Pressed(b Button) bool {
	return b < ButtonCount && in.current[b] && !in.previous[b]
}

// AnyPressed reports whether any button went down this tick.
func (in *Input) AnyPressed() bool {
	for b := range ButtonCount {
		if in.Pressed(b) {
			return true
		}
	}
	return false
}

// AnyDown reports whether any button is held.
func (in *Input) AnyDown() bool {
	return in.current.Any()
}

// Idle is the time since a button was last held.
func (in *Input) Idle() time.Duration {
	return in.idle
}

// Advance closes the tick: it ages the idle timer by d and makes the
// current states the reference for the next edge check.
func (in *Input) Advance(d time.Duration) {
	if in.current.Any() {
		in.idle = 0
	} else {
		in.idle += d
	}
	in.previous = in.current
}
