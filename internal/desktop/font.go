package desktop

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Font atlas layout: printable ASCII in a 16 column grid of 7x13 cells.
const (
	FontFirst  = 32
	FontLast   = 126
	FontCols   = 16
	FontRows   = 6
	FontCellW  = 7
	FontCellH  = 13
	FontAtlasW = FontCellW * FontCols // 112
	FontAtlasH = FontCellH * FontRows // 78
)

// buildFontAtlas rasterises basicfont.Face7x13 into a white-on-transparent
// atlas ready for upload.
func buildFontAtlas() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Src: image.White, Face: face}
	for ch := FontFirst; ch <= FontLast; ch++ {
		col, row := glyphCell(rune(ch))
		d.Dot = fixed.P(col*FontCellW, row*FontCellH+face.Ascent)
		d.DrawString(string(rune(ch)))
	}
	return img
}

// glyphCell returns the atlas cell for ch. Callers check hasGlyph first.
func glyphCell(ch rune) (col, row int) {
	i := int(ch) - FontFirst
	return i % FontCols, i / FontCols
}

func hasGlyph(ch rune) bool { return ch >= FontFirst && ch <= FontLast }

// TextWidth returns the width in screen pixels of a single line at scale.
func TextWidth(text string, scale float32) int {
	n := 0
	for range text {
		n++
	}
	return int(float32(n*FontCellW) * scale)
}
