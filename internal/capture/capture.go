// Package capture exports rendered frames as timestamped PNG files.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// TimestampLayout names captures by local wall-clock second. Two captures
// within the same second share a name and the later one wins.
const TimestampLayout = "2006-01-02-15-04-05"

// Capturer writes screenshots into a directory (empty means the working directory).
type Capturer struct {
	dir string
	now func() time.Time
}

// New creates a capturer writing into dir.
func New(dir string) *Capturer {
	return &Capturer{dir: dir, now: time.Now}
}

// Filename returns the path the next capture would be written to.
func (c *Capturer) Filename() string {
	name := c.now().Local().Format(TimestampLayout) + ".png"
	if c.dir != "" {
		name = filepath.Join(c.dir, name)
	}
	return name
}

// Capture encodes img as PNG and returns the written filename.
func (c *Capturer) Capture(img image.Image) (string, error) {
	if img == nil {
		return "", fmt.Errorf("no frame to capture")
	}

	if c.dir != "" {
		if err := os.MkdirAll(c.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.Filename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", filename, err)
	}
	return filename, nil
}

// FromPixels builds an image from tightly packed RGBA rows stored
// bottom-up, as returned by glReadPixels.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}
