package capture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestFilename(t *testing.T) {
	c := New("")
	c.now = fixedClock(time.Date(2024, 3, 9, 7, 5, 2, 999, time.Local))

	if got := c.Filename(); got != "2024-03-09-07-05-02.png" {
		t.Errorf("Filename() = %q", got)
	}

	c.dir = "shots"
	if got := c.Filename(); got != filepath.Join("shots", "2024-03-09-07-05-02.png") {
		t.Errorf("Filename() with dir = %q", got)
	}
}

func TestCaptureWritesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	c := New(dir)
	c.now = fixedClock(time.Date(2025, 12, 31, 23, 59, 59, 0, time.Local))

	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(2, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	name, err := c.Capture(img)
	if err != nil {
		t.Fatalf("Capture() error: %v", err)
	}
	if name != filepath.Join(dir, "2025-12-31-23-59-59.png") {
		t.Errorf("unexpected filename %q", name)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("opening capture: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding capture: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("bounds %v, want %v", decoded.Bounds(), img.Bounds())
	}
	r, g, b, _ := decoded.At(2, 1).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("pixel (2,1) = %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestCaptureSameSecondOverwrites(t *testing.T) {
	c := New(t.TempDir())
	c.now = fixedClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local))

	first, err := c.Capture(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Capture(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("expected same filename, got %q and %q", first, second)
	}
	f, _ := os.Open(second)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 4 {
		t.Errorf("expected later capture to win, width %d", cfg.Width)
	}
}

func TestCaptureFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	c := New(filepath.Join(blocker, "sub"))
	if _, err := c.Capture(image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error when output dir cannot be created")
	}
	if _, err := New(t.TempDir()).Capture(nil); err == nil {
		t.Error("expected error for nil image")
	}
}

func TestFromPixelsFlips(t *testing.T) {
	// Two rows, bottom row first.
	pixels := []byte{
		1, 1, 1, 255, 2, 2, 2, 255, // bottom
		9, 9, 9, 255, 8, 8, 8, 255, // top
	}
	img, err := FromPixels(pixels, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if img.Pix[0] != 9 || img.Pix[4] != 8 {
		t.Errorf("top row should come from last source row, got %v", img.Pix[:8])
	}
	if img.Pix[8] != 1 {
		t.Errorf("bottom row should come from first source row, got %v", img.Pix[8:])
	}

	if _, err := FromPixels(pixels, 3, 3); err == nil {
		t.Error("expected size mismatch error")
	}
}
