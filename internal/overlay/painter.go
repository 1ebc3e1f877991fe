package overlay

import (
	"image"

	"golang.org/x/image/font"
)

// Canvas is the surface overlay images are composited onto.
type Canvas interface {
	Size() (width, height int)
	DrawImage(img *image.RGBA, x, y int)
}

// Painter draws the legend and frame-rate readout. A nil face draws
// nothing, which is how a missing font degrades.
type Painter struct {
	face   font.Face
	canvas Canvas
	legend *image.RGBA

	// last frame-rate label, reused while the text is unchanged
	fpsText  string
	fpsImage *image.RGBA
}

// NewPainter creates a painter drawing onto canvas.
func NewPainter(face font.Face, canvas Canvas) *Painter {
	return &Painter{face: face, canvas: canvas}
}

// DrawControls draws the static controls legend in the top-left corner.
func (p *Painter) DrawControls() {
	if p.face == nil {
		return
	}
	if p.legend == nil {
		p.legend = Rasterize(p.face, LegendLayout(p.face))
	}
	if p.legend != nil {
		p.canvas.DrawImage(p.legend, 0, 0)
	}
}

// DrawFrameRate draws the frame rate in the bottom-left corner.
func (p *Painter) DrawFrameRate(fps float64) {
	if p.face == nil {
		return
	}
	pad := OutlineThickness
	text := FrameRateText(fps)
	if p.fpsImage == nil || text != p.fpsText {
		p.fpsText = text
		p.fpsImage = Rasterize(p.face, []Label{{Text: text, X: pad, Y: pad}})
	}
	img := p.fpsImage
	if img == nil {
		return
	}
	_, h := p.canvas.Size()
	p.canvas.DrawImage(img, Margin-pad, h-img.Bounds().Dy()-Margin+pad)
}
