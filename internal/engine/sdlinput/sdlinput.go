// Package sdlinput adapts SDL2 events and keyboard/mouse state to the
// preview's input model.
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/marchview/internal/engine/window"
	"github.com/Faultbox/marchview/internal/input"
)

var movementScancodes = [...]sdl.Scancode{
	input.KeyW: sdl.SCANCODE_W,
	input.KeyA: sdl.SCANCODE_A,
	input.KeyS: sdl.SCANCODE_S,
	input.KeyD: sdl.SCANCODE_D,
	input.KeyQ: sdl.SCANCODE_Q,
	input.KeyE: sdl.SCANCODE_E,
}

// Source implements input.Source on top of an SDL window.
type Source struct {
	win           *window.Window
	events        []input.Event
	cursorVisible bool
}

// New creates an input source for win.
func New(win *window.Window) *Source {
	return &Source{
		win:           win,
		events:        make([]input.Event, 0, 16),
		cursorVisible: true,
	}
}

// PollEvents drains the SDL queue and returns the recognized events in
// arrival order. Auto-repeated key presses are dropped.
func (s *Source) PollEvents() []input.Event {
	s.events = s.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.push(input.EventClose)

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				w, h := s.win.Size()
				s.events = append(s.events, input.Event{Type: input.EventResize, Width: w, Height: h})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				s.push(input.EventFocusLost)
			case sdl.WINDOWEVENT_CLOSE:
				s.push(input.EventClose)
			}

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_ESCAPE:
				s.push(input.EventEscape)
			case sdl.K_TAB:
				s.push(input.EventTab)
			case sdl.K_f:
				s.push(input.EventToggleFrameRate)
			case sdl.K_F12:
				s.push(input.EventScreenshot)
			}

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
				s.push(input.EventLeftClick)
			}
		}
	}

	return s.events
}

func (s *Source) push(t input.EventType) {
	s.events = append(s.events, input.Event{Type: t})
}

// IsKeyDown reports whether a movement key is physically held.
func (s *Source) IsKeyDown(k input.Key) bool {
	if int(k) >= len(movementScancodes) {
		return false
	}
	state := sdl.GetKeyboardState()
	return state[movementScancodes[k]] != 0
}

// CursorOffset returns the cursor displacement from the window center in
// drawable pixels, so that it matches the viewport the camera uses.
func (s *Source) CursorOffset() (int, int) {
	x, y, _ := sdl.GetMouseState()
	ww, wh := s.win.WindowSize()
	dw, _ := s.win.Size()

	dx := int(x) - ww/2
	dy := int(y) - wh/2
	if ww > 0 && dw != ww {
		scale := float64(dw) / float64(ww)
		dx = int(float64(dx) * scale)
		dy = int(float64(dy) * scale)
	}
	return dx, dy
}

// Recenter warps the cursor to the window center.
func (s *Source) Recenter() {
	ww, wh := s.win.WindowSize()
	s.win.WarpMouse(ww/2, wh/2)
}

// SetCursorVisible shows or hides the system cursor.
func (s *Source) SetCursorVisible(visible bool) {
	if visible == s.cursorVisible {
		return
	}
	toggle := sdl.DISABLE
	if visible {
		toggle = sdl.ENABLE
	}
	if _, err := sdl.ShowCursor(toggle); err == nil {
		s.cursorVisible = visible
	}
}
