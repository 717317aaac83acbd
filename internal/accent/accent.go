// Package accent derives a panel color theme from cover art.
package accent

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme is a background/text color pair used to tint a preview panel.
type Theme struct {
	Background color.RGBA
	Text       color.RGBA
}

var (
	defaultBackground = color.RGBA{R: 0xF7, G: 0x93, B: 0x1E, A: 0xFF}
	textLight         = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	textDark          = color.RGBA{R: 0x1A, G: 0x1A, B: 0x1E, A: 0xFF}
)

// Default is the placeholder theme shown until an extraction has completed.
func Default() Theme {
	return Theme{Background: defaultBackground, Text: textLight}
}

// sampleSize is the width covers are downscaled to before quantization.
// Extraction runs on the UI thread at activation time, so the pixel budget
// stays small.
const sampleSize = 64

// Extract picks the most vibrant dominant color of src and pairs it with a
// readable text color. It never fails; a cover with no usable pixels yields
// the default theme.
func Extract(src image.Image) Theme {
	if src == nil {
		return Default()
	}
	small := imaging.Resize(src, sampleSize, 0, imaging.NearestNeighbor)
	bounds := small.Bounds()
	if bounds.Empty() {
		return Default()
	}

	type bucket struct {
		count   int
		r, g, b float64
		score   float64
	}
	buckets := make(map[uint32]*bucket)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := small.NRGBAAt(x, y)
			if c.A < 0x80 {
				continue
			}
			cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
			_, s, v := cf.Hsv()

			// Quantize to 4 bits per channel so near-identical pixels pool.
			key := uint32(c.R>>4)<<8 | uint32(c.G>>4)<<4 | uint32(c.B>>4)
			bk := buckets[key]
			if bk == nil {
				bk = &bucket{}
				buckets[key] = bk
			}
			bk.count++
			bk.r += cf.R
			bk.g += cf.G
			bk.b += cf.B
			bk.score += vibrancy(s, v)
		}
	}

	var best *bucket
	for _, bk := range buckets {
		if best == nil || bk.score > best.score {
			best = bk
		}
	}
	if best == nil || best.count == 0 {
		return Default()
	}

	n := float64(best.count)
	bg := colorful.Color{R: best.r / n, G: best.g / n, B: best.b / n}.Clamped()
	return Theme{
		Background: color.RGBA{
			R: uint8(bg.R*255 + 0.5),
			G: uint8(bg.G*255 + 0.5),
			B: uint8(bg.B*255 + 0.5),
			A: 0xFF,
		},
		Text: textFor(bg),
	}
}

// vibrancy weights a pixel's claim on the theme. Saturated mid-brightness
// colors win over washed-out or near-black regions, which dominate most
// poster art by area.
func vibrancy(s, v float64) float64 {
	if v < 0.15 {
		return 0
	}
	return s*s*v + 0.01
}

// textFor returns a readable text color for the given background, picked by
// relative luminance.
func textFor(bg colorful.Color) color.RGBA {
	if luminance(bg) > 0.55 {
		return textDark
	}
	return textLight
}

func luminance(c colorful.Color) float64 {
	lin := func(ch float64) float64 {
		if ch <= 0.03928 {
			return ch / 12.92
		}
		// Rough sRGB linearization; close enough for a binary light/dark pick.
		return ((ch + 0.055) / 1.055) * ((ch + 0.055) / 1.055)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}
