package ui

import (
	"image"
	"testing"
)

func TestRectFHelpers(t *testing.T) {
	r := rectF{10, 20, 100, 40}
	if r.right() != 110 || r.bottom() != 60 {
		t.Fatalf("right/bottom: %f %f", r.right(), r.bottom())
	}
	if r.centerX() != 60 || r.centerY() != 40 {
		t.Fatalf("center: %f %f", r.centerX(), r.centerY())
	}
	if !r.contains(10, 20) || r.contains(110, 20) || r.contains(10, 60) {
		t.Fatalf("contains is not half-open")
	}
	got := r.reduced(5, 10)
	if got != (rectF{15, 30, 90, 20}) {
		t.Fatalf("reduced: %+v", got)
	}
	if r.expanded(3) != (rectF{7, 17, 106, 46}) {
		t.Fatalf("expanded: %+v", r.expanded(3))
	}
}

func TestRectFToImageRectCovers(t *testing.T) {
	r := rectF{10.2, 20.7, 30.1, 5.1}
	ir := r.toImageRect()
	if ir != image.Rect(10, 20, 41, 26) {
		t.Fatalf("toImageRect rounded inward: %v", ir)
	}
}

func TestCircleContains(t *testing.T) {
	c := circle{50, 50, 10}
	if !c.contains(50, 50) || !c.contains(50, 60) {
		t.Fatalf("center or boundary point rejected")
	}
	if c.contains(58, 58) { // corner of the bounding box, outside the circle
		t.Fatalf("bounding-box corner accepted")
	}
	if b := c.bounds(); b != (rectF{40, 40, 20, 20}) {
		t.Fatalf("bounds: %+v", b)
	}
}

func TestClamps(t *testing.T) {
	if clampF(5, 1, 3) != 3 || clampF(-5, 1, 3) != 1 || clampF(2, 1, 3) != 2 {
		t.Fatalf("clampF")
	}
	if clampInt(13, 1, 12) != 12 || clampInt(0, 1, 12) != 1 {
		t.Fatalf("clampInt")
	}
}
