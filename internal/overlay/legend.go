package overlay

import (
	"fmt"

	"golang.org/x/image/font"
)

// Layout constants in pixels.
const (
	Margin           = 8
	FontSize         = 16
	OutlineThickness = 2
)

// Controls is the legend shown in the top-left corner, as key/description pairs.
var Controls = [...][2]string{
	{"Left click:", "Lock mouse"},
	{"Esc:", "Release mouse"},
	{"Mouse:", "Look"},
	{"W:", "Move forward"},
	{"A:", "Move left"},
	{"S:", "Move backward"},
	{"D:", "Move right"},
	{"Q:", "Move down"},
	{"E:", "Move up"},
	{"F12:", "Take screenshot"},
	{"Tab:", "Toggle controls display"},
	{"F:", "Toggle frame rate display"},
}

// Label is a piece of text positioned by the top-left corner of its line box.
type Label struct {
	Text string
	X, Y int
}

// LegendLayout positions the controls legend: keys right-aligned in the
// first column, descriptions left-aligned in the second.
func LegendLayout(face font.Face) []Label {
	lineHeight := face.Metrics().Height.Ceil()

	keyWidth := 0
	for _, c := range Controls {
		keyWidth = max(keyWidth, font.MeasureString(face, c[0]).Ceil())
	}

	labels := make([]Label, 0, 2*len(Controls))
	for row, c := range Controls {
		y := Margin + row*lineHeight
		w := font.MeasureString(face, c[0]).Ceil()
		labels = append(labels,
			Label{Text: c[0], X: Margin + keyWidth - w, Y: y},
			Label{Text: c[1], X: 2*Margin + keyWidth, Y: y},
		)
	}
	return labels
}

// FrameRateText formats an instantaneous frame rate for display.
func FrameRateText(fps float64) string {
	return fmt.Sprintf("%.1f FPS", fps)
}

// FrameRate returns 1/dt, or 0 when no time has elapsed.
func FrameRate(dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	return 1 / dt
}
