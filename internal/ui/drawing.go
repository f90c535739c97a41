package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw primitives are defined as variables so tests can override them to
// capture draw calls without a graphics context.

var fillRect = func(dst *ebiten.Image, r rectF, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), c, true)
}

var strokeRect = func(dst *ebiten.Image, r rectF, width float64, c color.Color) {
	vector.StrokeRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), float32(width), c, true)
}

var strokeLine = func(dst *ebiten.Image, x1, y1, x2, y2, width float64, c color.Color) {
	vector.StrokeLine(dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}

var fillCircle = func(dst *ebiten.Image, c circle, col color.Color) {
	vector.DrawFilledCircle(dst, float32(c.cx), float32(c.cy), float32(c.r), col, true)
}

var strokeCircle = func(dst *ebiten.Image, c circle, width float64, col color.Color) {
	vector.StrokeCircle(dst, float32(c.cx), float32(c.cy), float32(c.r), float32(width), col, true)
}
