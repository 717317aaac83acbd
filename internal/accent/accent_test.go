package accent

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func solidImage(c color.RGBA, w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func TestDefaultTheme(t *testing.T) {
	th := Default()
	if th.Background != (color.RGBA{R: 0xF7, G: 0x93, B: 0x1E, A: 0xFF}) {
		t.Errorf("default background = %v", th.Background)
	}
	if th.Text != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Errorf("default text = %v", th.Text)
	}
}

func TestExtractDominantColor(t *testing.T) {
	// A saturated red cover should come back red-ish with light text.
	th := Extract(solidImage(color.RGBA{R: 0xC0, G: 0x10, B: 0x10, A: 0xFF}, 120, 180))
	if th.Background.R < 0xA0 || th.Background.G > 0x40 || th.Background.B > 0x40 {
		t.Errorf("background = %v, want dominant red", th.Background)
	}
	if th.Text != textLight {
		t.Errorf("text = %v, want light text on dark red", th.Text)
	}
}

func TestExtractPrefersVibrantOverDark(t *testing.T) {
	// Mostly near-black with a vibrant blue strip: the strip should win.
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{R: 0x08, G: 0x08, B: 0x08, A: 0xFF}}, image.Point{}, draw.Src)
	strip := image.Rect(0, 0, 100, 25)
	draw.Draw(img, strip, &image.Uniform{C: color.RGBA{R: 0x10, G: 0x50, B: 0xE0, A: 0xFF}}, image.Point{}, draw.Src)

	th := Extract(img)
	if th.Background.B < 0x80 {
		t.Errorf("background = %v, want the vibrant blue strip to dominate", th.Background)
	}
}

func TestExtractReadableTextOnBright(t *testing.T) {
	// Bright yellow needs dark text.
	th := Extract(solidImage(color.RGBA{R: 0xF0, G: 0xE0, B: 0x20, A: 0xFF}, 60, 90))
	if th.Text != textDark {
		t.Errorf("text = %v, want dark text on bright yellow", th.Text)
	}
}

func TestExtractNilAndEmpty(t *testing.T) {
	if th := Extract(nil); th != Default() {
		t.Errorf("nil image: theme = %v, want default", th)
	}
	if th := Extract(image.NewRGBA(image.Rect(0, 0, 0, 0))); th != Default() {
		t.Errorf("empty image: theme = %v, want default", th)
	}
}
