package overlay

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var (
	textColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor = color.RGBA{A: 255}
)

// Rasterize draws labels into a transparent image just large enough to hold
// them, with a dark outline around white glyphs. Returns nil when there is
// nothing to draw.
func Rasterize(face font.Face, labels []Label) *image.RGBA {
	if face == nil || len(labels) == 0 {
		return nil
	}
	m := face.Metrics()
	lineHeight := m.Height.Ceil()

	var w, h int
	for _, l := range labels {
		w = max(w, l.X+font.MeasureString(face, l.Text).Ceil()+OutlineThickness)
		h = max(h, l.Y+lineHeight+OutlineThickness)
	}
	if w <= 0 || h <= 0 {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{Dst: img, Face: face}

	d.Src = image.NewUniform(outlineColor)
	for _, off := range outlineOffsets(OutlineThickness) {
		for _, l := range labels {
			d.Dot = baseline(l, m.Ascent).Add(off)
			d.DrawString(l.Text)
		}
	}

	d.Src = image.NewUniform(textColor)
	for _, l := range labels {
		d.Dot = baseline(l, m.Ascent)
		d.DrawString(l.Text)
	}
	return img
}

func baseline(l Label, ascent fixed.Int26_6) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.I(l.X), Y: fixed.I(l.Y) + ascent}
}

// outlineOffsets returns the pixel offsets within radius r, excluding the origin.
func outlineOffsets(r int) []fixed.Point26_6 {
	var offs []fixed.Point26_6
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if (x == 0 && y == 0) || x*x+y*y > r*r {
				continue
			}
			offs = append(offs, fixed.P(x, y))
		}
	}
	return offs
}
