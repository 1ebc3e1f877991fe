// Package overlay holds the display/lock toggles driven by discrete input
// and draws the on-screen controls legend and frame-rate readout.
package overlay

import "github.com/Faultbox/marchview/internal/input"

// State is the set of overlay and mouse-lock toggles.
type State struct {
	MouseLocked      bool
	ControlsVisible  bool
	FrameRateVisible bool
}

// Default returns the startup state: legend shown, everything else off.
func Default() State {
	return State{ControlsVisible: true}
}

// Reduce applies events in arrival order. Later events win over earlier
// conflicting ones in the same batch.
func Reduce(s State, events []input.Event) State {
	for _, e := range events {
		s = s.Apply(e)
	}
	return s
}

// Apply returns the state after a single event.
func (s State) Apply(e input.Event) State {
	switch e.Type {
	case input.EventLeftClick:
		s.MouseLocked = true
	case input.EventEscape, input.EventFocusLost:
		s.MouseLocked = false
	case input.EventTab:
		s.ControlsVisible = !s.ControlsVisible
	case input.EventToggleFrameRate:
		s.FrameRateVisible = !s.FrameRateVisible
	}
	return s
}
