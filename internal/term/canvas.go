package term

import (
	"math"

	"bumpjump/internal/game"

	"github.com/gdamore/tcell/v2"
)

// canvas maps the 600x800 playfield onto however many terminal cells the
// screen has. Every cell is a space painted with a background colour;
// glyphs keep the background already under them.
type canvas struct {
	screen     tcell.Screen
	cols, rows int
	bg         []tcell.Color
	offX, offY float64
}

func newCanvas(s tcell.Screen) *canvas {
	return &canvas{screen: s}
}

func rgb(c game.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// begin sizes the canvas to the current screen and blanks it.
func (c *canvas) begin() {
	c.cols, c.rows = c.screen.Size()
	n := c.cols * c.rows
	if cap(c.bg) < n {
		c.bg = make([]tcell.Color, n)
	}
	c.bg = c.bg[:n]
	for i := range c.bg {
		c.bg[i] = tcell.ColorBlack
	}
	c.offX, c.offY = 0, 0
	c.screen.Clear()
}

func (c *canvas) setOffset(x, y float64) { c.offX, c.offY = x, y }

// cell converts a playfield point to a cell coordinate.
func (c *canvas) cell(x, y float64) (int, int) {
	cx := int(math.Floor((x + c.offX) * float64(c.cols) / game.ScreenWidth))
	cy := int(math.Floor((y + c.offY) * float64(c.rows) / game.ScreenHeight))
	return cx, cy
}

// rowY is the playfield Y at the centre of a cell row.
func (c *canvas) rowY(row int) float64 {
	return (float64(row) + 0.5) * game.ScreenHeight / float64(c.rows)
}

func (c *canvas) inside(cx, cy int) bool {
	return cx >= 0 && cy >= 0 && cx < c.cols && cy < c.rows
}

func (c *canvas) paint(cx, cy int, col tcell.Color) {
	if !c.inside(cx, cy) {
		return
	}
	c.bg[cy*c.cols+cx] = col
	c.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault.Background(col))
}

// fill paints the cells covering (x, y, w, h). Anything with a positive
// size covers at least one cell.
func (c *canvas) fill(x, y, w, h float64, col game.RGB) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := c.cell(x, y)
	x1, y1 := c.cell(x+w, y+h)
	x1, y1 = max(x1, x0+1), max(y1, y0+1)
	tc := rgb(col)
	for cy := max(y0, 0); cy < min(y1, c.rows); cy++ {
		for cx := max(x0, 0); cx < min(x1, c.cols); cx++ {
			c.paint(cx, cy, tc)
		}
	}
}

func (c *canvas) put(cx, cy int, ch rune, fg game.RGB) {
	if !c.inside(cx, cy) {
		return
	}
	st := tcell.StyleDefault.Foreground(rgb(fg)).Background(c.bg[cy*c.cols+cx]).Bold(true)
	c.screen.SetContent(cx, cy, ch, nil, st)
}

// glyph drops one character at a playfield point.
func (c *canvas) glyph(x, y float64, ch rune, fg game.RGB) {
	cx, cy := c.cell(x, y)
	c.put(cx, cy, ch, fg)
}

func (c *canvas) text(x, y float64, s string, fg game.RGB) {
	cx, cy := c.cell(x, y)
	for _, ch := range s {
		c.put(cx, cy, ch, fg)
		cx++
	}
}

// centered writes s in the middle column range of the row holding y.
func (c *canvas) centered(y float64, s string, fg game.RGB) {
	_, cy := c.cell(0, y)
	n := len([]rune(s))
	cx := (c.cols - n) / 2
	for _, ch := range s {
		c.put(cx, cy, ch, fg)
		cx++
	}
}
