package ui

import "image/color"

var (
	colPluginBG = color.RGBA{0x84, 0x94, 0x83, 255}

	colWoodEdge  = color.RGBA{0x8b, 0x5a, 0x2b, 255}
	colBoardFill = color.RGBA{0xd2, 0xa6, 0x79, 255}

	colString      = color.RGBA{0, 0, 0, 255}
	colFretSilver  = color.RGBA{0xa0, 0xa0, 0xa0, 255}
	colFretOutline = color.RGBA{0, 0, 0, 255}
	colNut         = color.RGBA{0, 0, 0, 255}
	colInlayFill   = color.RGBA{255, 255, 255, 255}
	colInlayStroke = color.RGBA{0, 0, 0, 255}

	colOpenFill   = color.RGBA{0xf5, 0xf5, 0xf5, 255}
	colOpenStroke = color.RGBA{0, 0, 0, 255}

	colHighlight = color.RGBA{0x67, 0xb8, 0xff, 255}
	colLabelText = color.RGBA{0, 0, 0, 255}

	colInspector = color.RGBA{255, 0, 255, 255}
)

// withAlpha applies a straight [0,1] opacity to an opaque theme colour.
func withAlpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, uint8(clampF(a, 0, 1)*255 + 0.5)}
}
