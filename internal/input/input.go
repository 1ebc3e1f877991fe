// Package input defines the per-frame input model consumed by the camera
// controller and the overlay reducer, independent of any windowing backend.
package input

// EventType identifies a discrete input event.
type EventType int

const (
	EventNone EventType = iota
	EventClose
	EventEscape
	EventLeftClick
	EventTab
	EventToggleFrameRate
	EventScreenshot
	EventResize
	EventFocusLost
)

var eventNames = [...]string{
	EventNone:            "none",
	EventClose:           "close",
	EventEscape:          "escape",
	EventLeftClick:       "left-click",
	EventTab:             "tab",
	EventToggleFrameRate: "toggle-frame-rate",
	EventScreenshot:      "screenshot",
	EventResize:          "resize",
	EventFocusLost:       "focus-lost",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[t]
}

// Event is a discrete input event. Width and Height are set for EventResize.
type Event struct {
	Type   EventType
	Width  int
	Height int
}

// Key is a movement key whose held state is polled every frame.
type Key uint8

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
)

// MovementKeys lists every polled key.
var MovementKeys = [...]Key{KeyW, KeyA, KeyS, KeyD, KeyQ, KeyE}

// KeySet is a bit set of held keys.
type KeySet uint8

// With returns the set including k.
func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}

// Has reports whether k is held.
func (s KeySet) Has(k Key) bool {
	return s&(1<<k) != 0
}

// Axis returns +1, -1 or 0 from a positive/negative key pair.
func (s KeySet) Axis(positive, negative Key) float32 {
	var v float32
	if s.Has(positive) {
		v++
	}
	if s.Has(negative) {
		v--
	}
	return v
}

// Source is the capability the frame loop needs from the host window.
type Source interface {
	// PollEvents drains queued discrete events without blocking.
	PollEvents() []Event
	// IsKeyDown reports the live held state of a movement key.
	IsKeyDown(k Key) bool
	// CursorOffset returns the cursor position relative to the viewport center.
	CursorOffset() (dx, dy int)
	// Recenter moves the cursor back to the viewport center.
	Recenter()
	// SetCursorVisible shows or hides the cursor.
	SetCursorVisible(visible bool)
}

// Frame is the normalized input for one loop iteration.
type Frame struct {
	DeltaTime float64
	Events    []Event
	Held      KeySet
	MouseDX   int
	MouseDY   int
}

// HeldKeys samples the held state of every movement key.
func HeldKeys(src Source) KeySet {
	var s KeySet
	for _, k := range MovementKeys {
		if src.IsKeyDown(k) {
			s = s.With(k)
		}
	}
	return s
}

// Contains reports whether any event of type t is present.
func Contains(events []Event, t EventType) bool {
	for _, e := range events {
		if e.Type == t {
			return true
		}
	}
	return false
}
