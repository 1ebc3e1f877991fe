package input

import "testing"

type heldSource struct {
	down map[Key]bool
}

func (h heldSource) PollEvents() []Event { return nil }
func (h heldSource) IsKeyDown(k Key) bool { return h.down[k] }
func (h heldSource) CursorOffset() (int, int) { return 0, 0 }
func (h heldSource) Recenter() {}
func (h heldSource) SetCursorVisible(bool) {}

func TestKeySetAxis(t *testing.T) {
	tests := []struct {
		name string
		set  KeySet
		want float32
	}{
		{"none", 0, 0},
		{"positive", KeySet(0).With(KeyW), 1},
		{"negative", KeySet(0).With(KeyS), -1},
		{"both cancel", KeySet(0).With(KeyW).With(KeyS), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Axis(KeyW, KeyS); got != tt.want {
				t.Errorf("Axis() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHeldKeys(t *testing.T) {
	src := heldSource{down: map[Key]bool{KeyA: true, KeyE: true}}
	s := HeldKeys(src)
	for _, k := range MovementKeys {
		want := k == KeyA || k == KeyE
		if s.Has(k) != want {
			t.Errorf("key %d held = %v, want %v", k, s.Has(k), want)
		}
	}
}

func TestContains(t *testing.T) {
	events := []Event{{Type: EventTab}, {Type: EventResize, Width: 10, Height: 5}}
	if !Contains(events, EventResize) {
		t.Error("expected resize event to be found")
	}
	if Contains(events, EventClose) {
		t.Error("did not expect close event")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventScreenshot.String() != "screenshot" {
		t.Errorf("got %q", EventScreenshot.String())
	}
	if EventType(99).String() != "unknown" {
		t.Errorf("got %q", EventType(99).String())
	}
}
