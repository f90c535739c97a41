//go:build inspector

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawInspector overlays hit-target outlines and cursor diagnostics on top of
// the rendered tree. Compiled in only with -tags inspector; release builds
// get the no-op in inspector_off.go.
func (e *Editor) drawInspector(screen *ebiten.Image) {
	f := e.fret
	ox, oy := float64(f.bounds.Min.X), float64(f.bounds.Min.Y)

	strokeRect(screen, rectF{f.board.x + ox, f.board.y + oy, f.board.w, f.board.h}, 1, colInspector)
	for s := 0; s < numStrings; s++ {
		r := f.rows[s]
		strokeRect(screen, rectF{r.x + ox, r.y + oy, r.w, r.h}, 1, colInspector)
		c := f.opens[s]
		strokeCircle(screen, circle{c.cx + ox, c.cy + oy, c.r}, 1, colInspector)
	}

	mx, my := cursorPosition()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("cursor=(%d,%d) highlights=%d rebuilds=%d", mx, my, len(f.active), f.rebuilds),
		4, e.winH-16)
}
