package ui

import (
	"bytes"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"

	game_log "github.com/tunelab/fretview/internal/log"
)

const (
	editorInset = 10
	labelStripH = 28 // note-label strip height in px
	labelSize   = 16
)

const defaultLabelText = "Click a fret or an open circle"

// Editor is the plugin-editor window: a note label strip on top and the
// fretboard below. It implements ebiten.Game.
type Editor struct {
	logger *game_log.Logger
	fret   *Fretboard

	labelText string
	labelRect image.Rectangle
	face      *text.GoTextFace

	winW, winH int
	leftPrev   bool
}

func NewEditor(logger *game_log.Logger) *Editor {
	e := &Editor{
		logger:    logger,
		fret:      NewFretboard(logger),
		labelText: defaultLabelText,
	}
	e.fret.OnNotePlayed = func(note string) {
		e.labelText = "Note: " + note
		e.logger.Infof("[EDITOR] note played: %s", note)
	}
	return e
}

// Fretboard exposes the embedded component for programmatic drivers.
func (e *Editor) Fretboard() *Fretboard { return e.fret }

func (e *Editor) Layout(w, h int) (int, int) {
	if w != e.winW || h != e.winH {
		e.logger.Infof("[EDITOR] Layout: %dx%d", w, h)
	}
	e.winW, e.winH = w, h

	area := image.Rect(0, 0, w, h).Inset(editorInset)
	top := image.Rect(area.Min.X, area.Min.Y, area.Max.X, area.Min.Y+labelStripH)
	e.labelRect = image.Rect(top.Min.X, top.Min.Y, top.Min.X+area.Dx()*65/100, top.Max.Y)
	e.fret.SetBounds(image.Rect(area.Min.X, top.Max.Y, area.Max.X, area.Max.Y))
	return w, h
}

func (e *Editor) Update() error {
	left := isMouseButtonPressed(ebiten.MouseButtonLeft)
	if left && !e.leftPrev {
		x, y := cursorPosition()
		if b := e.fret.Bounds(); pt(x, y, b) {
			e.logger.Debugf("[EDITOR] pointer down at screen=(%d,%d)", x, y)
			e.fret.HandlePointerDown(float64(x-b.Min.X), float64(y-b.Min.Y))
		}
	}
	e.leftPrev = left

	if dirty := e.fret.Tick(); !dirty.Empty() {
		e.logger.Debugf("[EDITOR] repaint region: %v", dirty)
	}
	return nil
}

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(colPluginBG)
	e.drawLabel(screen)
	e.fret.Draw(screen)
	e.drawInspector(screen) // no-op unless built with -tags inspector
}

func (e *Editor) drawLabel(dst *ebiten.Image) {
	if e.face == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if err != nil {
			e.logger.Errorf("[EDITOR] label font: %v", err)
			return
		}
		e.face = &text.GoTextFace{Source: src, Size: labelSize}
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(e.labelRect.Min.X), float64(e.labelRect.Min.Y)+float64(labelStripH-labelSize)/2)
	op.ColorScale.ScaleWithColor(colLabelText)
	text.Draw(dst, e.labelText, e.face, op)
}
