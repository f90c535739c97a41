package ui

import (
	"image"
	"math"
)

// rectF is an axis-aligned rectangle in float pixel coordinates.
type rectF struct{ x, y, w, h float64 }

func (r rectF) right() float64   { return r.x + r.w }
func (r rectF) bottom() float64  { return r.y + r.h }
func (r rectF) centerX() float64 { return r.x + r.w/2 }
func (r rectF) centerY() float64 { return r.y + r.h/2 }

func (r rectF) contains(px, py float64) bool {
	return px >= r.x && px < r.right() && py >= r.y && py < r.bottom()
}

// reduced shrinks the rectangle by dx on the left/right and dy on the
// top/bottom. Negative values grow it.
func (r rectF) reduced(dx, dy float64) rectF {
	return rectF{r.x + dx, r.y + dy, r.w - 2*dx, r.h - 2*dy}
}

func (r rectF) expanded(d float64) rectF { return r.reduced(-d, -d) }

// toImageRect rounds outward so the int rect always covers the float rect.
func (r rectF) toImageRect() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.x)), int(math.Floor(r.y)),
		int(math.Ceil(r.right())), int(math.Ceil(r.bottom())))
}

// circle is a circular hit target.
type circle struct{ cx, cy, r float64 }

func (c circle) contains(px, py float64) bool {
	dx, dy := px-c.cx, py-c.cy
	return dx*dx+dy*dy <= c.r*c.r
}

func (c circle) bounds() rectF { return rectF{c.cx - c.r, c.cy - c.r, 2 * c.r, 2 * c.r} }

// pt is a helper function to check if a point is within a rectangle.
func pt(x, y int, r image.Rectangle) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
