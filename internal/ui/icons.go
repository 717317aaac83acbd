package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawPlayIcon draws a right-pointing triangle centered at (cx, cy).
func drawPlayIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	left := cx - r*0.6
	vector.StrokeLine(dst, left, cy-r, cx+r, cy, 2, clr, false)
	vector.StrokeLine(dst, cx+r, cy, left, cy+r, 2, clr, false)
	vector.StrokeLine(dst, left, cy+r, left, cy-r, 2, clr, false)
}

// drawXMark draws an X centered at (cx, cy).
func drawXMark(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeLine(dst, cx-r, cy-r, cx+r, cy+r, 2, clr, false)
	vector.StrokeLine(dst, cx-r, cy+r, cx+r, cy-r, 2, clr, false)
}

// drawSearchIcon draws a magnifying glass icon at (cx, cy) with given radius.
func drawSearchIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	lensR := r * 0.6
	lensCX := cx - r*0.15
	lensCY := cy - r*0.15
	vector.StrokeCircle(dst, lensCX, lensCY, lensR, 1.8, clr, false)
	hx := lensCX + lensR*0.7
	hy := lensCY + lensR*0.7
	vector.StrokeLine(dst, hx, hy, hx+r*0.45, hy+r*0.45, 2, clr, false)
}
