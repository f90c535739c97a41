package ui

import (
	"image"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	game_log "github.com/tunelab/fretview/internal/log"
	"github.com/tunelab/fretview/internal/music"
)

const (
	numStrings = 4
	numFrets   = 12 // frets 1..12 on the board, 0 = open string

	highlightSecs   = 1.8 // fade duration
	highlightMargin = 3.0

	boardMargin   = 16.0
	openGutter    = 64.0 // room left of the nut for the open-string circles
	edgeThickness = 10.0
	openGap       = 12.0 // gap between the open circles and the nut
)

// stringMIDI maps the top-to-bottom row index to the open-string MIDI pitch.
// Rows read G D A E downward so the strings run E A D G bottom-to-top, like a
// 4-string bass.
var stringMIDI = [numStrings]int{43, 38, 33, 28}

// nowSeconds is the animation clock. Overridden in tests.
var nowSeconds = func() float64 { return float64(time.Now().UnixNano()) / 1e9 }

// newImage allocates the static-layer bitmap. Overridable in tests.
var newImage = ebiten.NewImage

// easeOutCubic maps t to 1-(1-t)^3, clamping its input to [0,1].
func easeOutCubic(t float64) float64 {
	t = clampF(t, 0, 1)
	u := 1 - t
	return 1 - u*u*u
}

// highlight is one fading marker at a struck position. Its rendered opacity
// is a pure function of elapsed time; nothing advances it between frames.
type highlight struct {
	start     float64
	duration  float64
	cx, cy    float64
	bounds    rectF
	note      string
	str, fret int
}

func (h *highlight) expired(now float64) bool { return now-h.start >= h.duration }

// alpha returns the opacity at the given time, 0 once expired.
func (h *highlight) alpha(now float64) float64 {
	t := (now - h.start) / h.duration
	if t >= 1 {
		return 0
	}
	return 1 - easeOutCubic(t)
}

// Fretboard renders a 4-string, 12-fret bass fretboard, resolves pointer and
// programmatic input into (string, fret) positions and animates a fading
// circle at each struck position.
//
// All geometry lives in component-local coordinates. SetBounds places the
// component inside the window and is the only source of sizes. Everything
// here runs on the Ebitengine game goroutine; there is no locking.
type Fretboard struct {
	logger *game_log.Logger

	// OnNotePlayed, when set, receives the note name ("G2", "C#3") once per
	// successful trigger, before the highlight is appended.
	OnNotePlayed func(note string)

	bounds image.Rectangle // placement within the window

	// geometry, a pure function of the drawable size
	board        rectF
	rows         [numStrings]rectF
	opens        [numStrings]circle
	openRadius   float64 // shared by open circles and highlight circles
	geomW, geomH int
	rebuilds     int

	active []highlight

	static *ebiten.Image   // cached background, rebuilt only on size change
	dirty  image.Rectangle // pending repaint region in local coords
}

func NewFretboard(logger *game_log.Logger) *Fretboard {
	return &Fretboard{logger: logger}
}

// Bounds returns the placement set by SetBounds.
func (f *Fretboard) Bounds() image.Rectangle { return f.bounds }

// SetBounds places the component inside the window. Geometry depends on the
// size alone, so only an actual size change triggers a rebuild.
func (f *Fretboard) SetBounds(r image.Rectangle) {
	f.bounds = r
	if f.geomW != 0 && r.Dx() == f.geomW && r.Dy() == f.geomH {
		return
	}
	f.rebuildGeometry(r.Dx(), r.Dy())
}

// rebuildGeometry recomputes the board layout for a w x h drawable area.
// Degenerate sizes are skipped, leaving any previous geometry in place.
func (f *Fretboard) rebuildGeometry(w, h int) {
	if w <= 2 || h <= 2 {
		f.logger.Debugf("[FRET] rebuildGeometry: skipping degenerate size %dx%d", w, h)
		return
	}

	outer := rectF{0, 0, float64(w), float64(h)}.reduced(boardMargin, boardMargin)
	boardOuter := rectF{outer.x + openGutter, outer.y, outer.w - openGutter, outer.h}
	f.board = boardOuter.reduced(edgeThickness, edgeThickness)

	rowH := f.board.h / numStrings
	for s := 0; s < numStrings; s++ {
		r := rectF{f.board.x, f.board.y + float64(s)*rowH, f.board.w, rowH}
		f.rows[s] = r.reduced(0, math.Min(3.0, r.h*0.12))
	}

	f.openRadius = clampF(f.board.h*0.065, 12, 22)
	nutX := math.Round(f.board.x) + 0.5
	for s := 0; s < numStrings; s++ {
		f.opens[s] = circle{nutX - (f.openRadius + openGap), f.rows[s].centerY(), f.openRadius}
	}

	f.geomW, f.geomH = w, h
	f.rebuilds++
	f.static = nil
	f.logger.Debugf("[FRET] rebuildGeometry: %dx%d board=(%.0f,%.0f %.0fx%.0f) openRadius=%.1f",
		w, h, f.board.x, f.board.y, f.board.w, f.board.h, f.openRadius)
}

// cellWidth is the horizontal size of one fret cell.
func (f *Fretboard) cellWidth() float64 { return f.board.w / numFrets }

// TriggerNote plays (stringIdx, fretIdx); fret 0 is the open string. Values
// outside [0,3] x [0,12] are silently ignored so external drivers can probe
// the boundary without an error path.
func (f *Fretboard) TriggerNote(stringIdx, fretIdx int) {
	if stringIdx < 0 || stringIdx >= numStrings {
		return
	}
	if fretIdx < 0 || fretIdx > numFrets {
		return
	}

	if f.openRadius <= 0 {
		// first trigger can arrive before any layout pass
		f.rebuildGeometry(f.bounds.Dx(), f.bounds.Dy())
	}

	h := highlight{
		start:    nowSeconds(),
		duration: highlightSecs,
		note:     music.NoteName(stringMIDI[stringIdx] + fretIdx),
		str:      stringIdx,
		fret:     fretIdx,
	}
	if fretIdx == 0 {
		h.cx, h.cy = f.opens[stringIdx].cx, f.opens[stringIdx].cy
	} else {
		h.cx = f.board.x + (float64(fretIdx)-0.5)*f.cellWidth()
		h.cy = f.rows[stringIdx].centerY()
	}
	// highlight circles share openRadius regardless of position
	h.bounds = circle{h.cx, h.cy, f.openRadius}.bounds().expanded(highlightMargin)

	if f.OnNotePlayed != nil {
		f.OnNotePlayed(h.note)
	}

	f.active = append(f.active, h) // multiple highlights allowed
	f.addDirty(h.bounds.toImageRect())
	f.logger.Debugf("[FRET] TriggerNote: string=%d fret=%d note=%s center=(%.1f,%.1f)",
		stringIdx, fretIdx, h.note, h.cx, h.cy)
}

// HandlePointerDown resolves a press at (x, y) in local coordinates. The open
// circles are tested first: they sit outside the board rectangle and must not
// be shadowed by the outside-the-board rejection below.
func (f *Fretboard) HandlePointerDown(x, y float64) {
	for s := 0; s < numStrings; s++ {
		if f.opens[s].contains(x, y) {
			f.TriggerNote(s, 0)
			return
		}
	}
	if !f.board.contains(x, y) {
		return
	}
	stringIdx := -1
	for s := 0; s < numStrings; s++ {
		if f.rows[s].contains(x, y) {
			stringIdx = s
			break
		}
	}
	if stringIdx < 0 {
		return
	}
	fretIdx := int(math.Floor((x-f.board.x)/f.cellWidth())) + 1
	fretIdx = clampInt(fretIdx, 1, numFrets)
	f.TriggerNote(stringIdx, fretIdx)
}

// Tick runs at the host's fixed 60 TPS rate. It only accumulates the repaint
// region covering the active highlights; with no highlights it does nothing
// and returns the zero rectangle.
func (f *Fretboard) Tick() image.Rectangle {
	if len(f.active) == 0 {
		return image.Rectangle{}
	}
	var union image.Rectangle
	for i := range f.active {
		b := f.active[i].bounds.toImageRect()
		if union.Empty() {
			union = b
		} else {
			union = union.Union(b)
		}
	}
	union = union.Inset(-2)
	f.addDirty(union)
	return union
}

func (f *Fretboard) addDirty(r image.Rectangle) {
	if f.dirty.Empty() {
		f.dirty = r
		return
	}
	f.dirty = f.dirty.Union(r)
}

// expireAndWalk removes expired highlights and hands the survivors to visit
// together with their current opacity. Removal shares the render traversal:
// iterating in reverse keeps unvisited indices stable across deletions.
func (f *Fretboard) expireAndWalk(now float64, visit func(h *highlight, alpha float64)) {
	for i := len(f.active) - 1; i >= 0; i-- {
		h := &f.active[i]
		if h.expired(now) {
			f.active = append(f.active[:i], f.active[i+1:]...)
			continue
		}
		if visit != nil {
			visit(h, h.alpha(now))
		}
	}
}

// Draw blits the cached static layer and paints the active highlights on top.
func (f *Fretboard) Draw(dst *ebiten.Image) {
	w, h := f.bounds.Dx(), f.bounds.Dy()
	if w <= 2 || h <= 2 {
		return
	}
	if f.geomW != w || f.geomH != h {
		f.rebuildGeometry(w, h)
	}
	if f.static == nil {
		f.buildStatic()
	}
	if f.static == nil {
		return
	}

	ox, oy := float64(f.bounds.Min.X), float64(f.bounds.Min.Y)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ox, oy)
	dst.DrawImage(f.static, op)

	now := nowSeconds()
	f.expireAndWalk(now, func(hl *highlight, alpha float64) {
		fillCircle(dst, circle{hl.cx + ox, hl.cy + oy, f.openRadius}, withAlpha(colHighlight, alpha))
	})
	f.dirty = image.Rectangle{}
}

// buildStatic renders the board frame, strings, frets, nut, inlays and open
// circles into an offscreen image. It is the expensive pass, paid only when
// the drawable size changes.
func (f *Fretboard) buildStatic() {
	w, h := f.geomW, f.geomH
	if w == 0 || h == 0 {
		return
	}
	img := newImage(w, h)
	img.Fill(colPluginBG)

	outer := rectF{0, 0, float64(w), float64(h)}.reduced(boardMargin, boardMargin)
	boardOuter := rectF{outer.x + openGutter, outer.y, outer.w - openGutter, outer.h}

	// wood edge, then the board face on top of it
	fillRect(img, boardOuter, colWoodEdge)
	fillRect(img, f.board, colBoardFill)

	// strings, nut to board end
	for s := 0; s < numStrings; s++ {
		y := f.rows[s].centerY() + 0.5
		strokeLine(img, math.Round(f.board.x)+0.5, y, math.Round(f.board.right())+0.5, y, 1.5, colString)
	}

	// frets: black outline pass, then a narrower silver pass on top for a
	// beveled look
	cw := f.cellWidth()
	for fi := 1; fi <= numFrets; fi++ {
		x := math.Round(f.board.x+float64(fi)*cw) + 0.5
		strokeLine(img, x, f.board.y, x, f.board.bottom(), 2.6, colFretOutline)
		strokeLine(img, x, f.board.y, x, f.board.bottom(), 2.0, colFretSilver)
	}

	// nut
	nutX := math.Round(f.board.x) + 0.5
	strokeLine(img, nutX, f.board.y, nutX, f.board.bottom(), 2.5, colNut)

	// inlays: single at 3/5/7/9, double at 12 offset from center to clear
	// the strings
	inlayR := clampF(f.board.h*0.052, 8, 20)
	for _, fi := range []int{3, 5, 7, 9} {
		c := circle{f.board.x + (float64(fi)-0.5)*cw, f.board.centerY(), inlayR}
		fillCircle(img, c, colInlayFill)
		strokeCircle(img, c, 1, colInlayStroke)
	}
	cx12 := f.board.x + 11.5*cw
	for _, fy := range []float64{0.28, 0.72} {
		c := circle{cx12, f.board.y + f.board.h*fy, inlayR}
		fillCircle(img, c, colInlayFill)
		strokeCircle(img, c, 1, colInlayStroke)
	}

	// open-string hit targets
	for s := 0; s < numStrings; s++ {
		fillCircle(img, f.opens[s], colOpenFill)
		strokeCircle(img, f.opens[s], 1, colOpenStroke)
	}

	f.static = img
	f.logger.Infof("[FRET] buildStatic: rebuilt static layer at %dx%d", w, h)
}
