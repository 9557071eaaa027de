package cli

import (
	"math"
	"strings"

	"github.com/mhellweg/dockyard/pkg/geom"
)

// cellCanvas is a terminal cell buffer the demo paints tiles into. The
// engine works in float64 coordinates; the canvas rounds to whole cells.
type cellCanvas struct {
	w, h  int
	cells [][]rune
}

func newCanvas(w, h int) *cellCanvas {
	c := &cellCanvas{w: w, h: h}
	c.cells = make([][]rune, h)
	for y := range c.cells {
		c.cells[y] = make([]rune, w)
	}
	c.clear()
	return c
}

func (c *cellCanvas) clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = ' '
		}
	}
}

func (c *cellCanvas) set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = r
}

// writeString writes s at the given cell, clipped to maxw cells.
func (c *cellCanvas) writeString(x, y, maxw int, s string) {
	for i, r := range []rune(s) {
		if i >= maxw {
			return
		}
		c.set(x+i, y, r)
	}
}

// drawBox draws a single-line border just inside the rectangle.
func (c *cellCanvas) drawBox(rect geom.Rect) {
	x0, y0 := cell(rect.Min.X), cell(rect.Min.Y)
	x1, y1 := cell(rect.Max.X)-1, cell(rect.Max.Y)-1
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for x := x0 + 1; x < x1; x++ {
		c.set(x, y0, '─')
		c.set(x, y1, '─')
	}
	for y := y0 + 1; y < y1; y++ {
		c.set(x0, y, '│')
		c.set(x1, y, '│')
	}
	c.set(x0, y0, '┌')
	c.set(x1, y0, '┐')
	c.set(x0, y1, '└')
	c.set(x1, y1, '┘')
}

// shade fills the rectangle's cells, used for drop previews.
func (c *cellCanvas) shade(rect geom.Rect) {
	x0, y0 := cell(rect.Min.X), cell(rect.Min.Y)
	x1, y1 := cell(rect.Max.X), cell(rect.Max.Y)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.set(x, y, '░')
		}
	}
}

func (c *cellCanvas) String() string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

func cell(v float64) int { return int(math.Round(v)) }
