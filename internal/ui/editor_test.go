package ui

import (
	"os"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tunelab/fretview/internal/log"
)

const (
	TestWinW = 980
	TestWinH = 340
)

func newTestEditor() *Editor {
	e := NewEditor(log.New(os.Stdout, log.LevelError))
	e.Layout(TestWinW, TestWinH)
	return e
}

func TestEditorLayout(t *testing.T) {
	e := newTestEditor()

	fb := e.fret.Bounds()
	if fb.Min.X != editorInset || fb.Max.X != TestWinW-editorInset {
		t.Errorf("fretboard x-bounds %v", fb)
	}
	if fb.Min.Y != editorInset+labelStripH {
		t.Errorf("fretboard should start below the label strip, got %d", fb.Min.Y)
	}
	if fb.Max.Y != TestWinH-editorInset {
		t.Errorf("fretboard should end at the window inset, got %d", fb.Max.Y)
	}

	if e.labelRect.Dx() != (TestWinW-2*editorInset)*65/100 {
		t.Errorf("label width %d, want 65%% of the content area", e.labelRect.Dx())
	}
	if e.labelRect.Overlaps(fb) {
		t.Errorf("label %v overlaps fretboard %v", e.labelRect, fb)
	}
}

func TestEditorLayoutIdempotent(t *testing.T) {
	e := newTestEditor()
	rebuilds := e.fret.rebuilds
	e.Layout(TestWinW, TestWinH)
	e.Layout(TestWinW, TestWinH)
	if e.fret.rebuilds != rebuilds {
		t.Fatalf("repeated same-size Layout rebuilt geometry: %d -> %d", rebuilds, e.fret.rebuilds)
	}
}

func TestEditorClickRouting(t *testing.T) {
	e := newTestEditor()
	f := e.fret
	b := f.Bounds()

	// window coords of row 0, 5th fret cell center
	x := b.Min.X + int(f.board.x+4.5*f.cellWidth())
	y := b.Min.Y + int(f.rows[0].centerY())

	pressed := false
	restore := SetInputForTest(
		func() (int, int) { return x, y },
		func(ebiten.MouseButton) bool { return pressed },
	)
	defer restore()

	pressed = true
	if err := e.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(f.active) != 1 {
		t.Fatalf("click did not trigger a note, highlights=%d", len(f.active))
	}
	if h := f.active[0]; h.str != 0 || h.fret != 5 {
		t.Fatalf("click resolved (%d,%d), want (0,5)", h.str, h.fret)
	}
	if e.labelText != "Note: C3" {
		t.Fatalf("label=%q want %q", e.labelText, "Note: C3")
	}

	// holding the button is not a second press
	e.Update()
	if len(f.active) != 1 {
		t.Fatalf("held button re-triggered, highlights=%d", len(f.active))
	}

	// release then press again
	pressed = false
	e.Update()
	pressed = true
	e.Update()
	if len(f.active) != 2 {
		t.Fatalf("second click not registered, highlights=%d", len(f.active))
	}
}

func TestEditorClickOutsideFretboardIgnored(t *testing.T) {
	e := newTestEditor()

	pressed := true
	restore := SetInputForTest(
		func() (int, int) { return e.labelRect.Min.X + 2, e.labelRect.Min.Y + 2 },
		func(ebiten.MouseButton) bool { return pressed },
	)
	defer restore()

	e.Update()
	if len(e.fret.active) != 0 {
		t.Fatalf("click in the label strip triggered a note")
	}
	if e.labelText != defaultLabelText {
		t.Fatalf("label changed without a trigger: %q", e.labelText)
	}
}

func TestEditorLabelDefaultAndCallback(t *testing.T) {
	e := newTestEditor()
	if e.labelText != defaultLabelText {
		t.Fatalf("default label %q", e.labelText)
	}
	e.fret.TriggerNote(2, 0)
	if e.labelText != "Note: A1" {
		t.Fatalf("label after trigger %q want %q", e.labelText, "Note: A1")
	}
}
