// Package icon generates the DimView window icon at runtime: a play triangle
// on a rounded orange tile.
package icon

import (
	"image"
	"image/color"
)

var (
	dimOrange  = color.RGBA{R: 0xF7, G: 0x93, B: 0x1E, A: 0xFF}
	dimDark    = color.RGBA{R: 0x12, G: 0x11, B: 0x16, A: 0xFF}
	glyphWhite = color.RGBA{R: 0xF5, G: 0xF0, B: 0xE8, A: 0xFF}
	shadowCol  = color.RGBA{R: 0xC4, G: 0x71, B: 0x10, A: 0x90}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	// Dark canvas with an orange rounded tile
	fillRoundedRect(img, 0, 0, s, s, s*0.12, dimDark)
	fillRoundedRect(img, s*0.08, s*0.08, s*0.84, s*0.84, s*0.16, dimOrange)

	// Slight inner shade along the bottom of the tile
	fillRoundedRect(img, s*0.08, s*0.72, s*0.84, s*0.20, s*0.10, shadowCol)

	drawPlayTriangle(img, s)

	return img
}

// drawPlayTriangle fills a right-pointing triangle centered on the tile.
func drawPlayTriangle(img *image.RGBA, s float64) {
	left := s * 0.36
	right := s * 0.72
	top := s * 0.30
	bottom := s * 0.70
	cy := (top + bottom) / 2

	for y := int(top); y <= int(bottom); y++ {
		// Width shrinks linearly toward the tip
		t := 1.0 - abs(float64(y)-cy)/(cy-top)
		xEnd := left + (right-left)*t
		for x := int(left); x <= int(xEnd); x++ {
			blendPixel(img, x, y, glyphWhite)
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, r float64, c color.Color) {
	bounds := img.Bounds()
	x0, y0 := int(xf), int(yf)
	x1, y1 := int(xf+wf), int(yf+hf)

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			fx, fy := float64(x), float64(y)
			inside := true

			var dx, dy float64
			switch {
			case fx < xf+r && fy < yf+r:
				dx, dy = xf+r-fx, yf+r-fy
			case fx > xf+wf-r && fy < yf+r:
				dx, dy = fx-(xf+wf-r), yf+r-fy
			case fx < xf+r && fy > yf+hf-r:
				dx, dy = xf+r-fx, fy-(yf+hf-r)
			case fx > xf+wf-r && fy > yf+hf-r:
				dx, dy = fx-(xf+wf-r), fy-(yf+hf-r)
			}
			if dx*dx+dy*dy > r*r {
				inside = false
			}

			if inside {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	alpha := a0
	invAlpha := 0xFFFF - alpha
	nr := (r0*alpha + er*invAlpha) / 0xFFFF
	ng := (g0*alpha + eg*invAlpha) / 0xFFFF
	nb := (b0*alpha + eb*invAlpha) / 0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
