package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille cells are 2x4 dots:
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a grid of Braille characters. Each cell also remembers the
// ribbon nearest the viewer that touched it, so it can be colored.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Owner         [][]int
	depth         [][]float64
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h}
	c.Grid = make([][]rune, h)
	c.Owner = make([][]int, h)
	c.depth = make([][]float64, h)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Owner[i] = make([]int, w)
		c.depth[i] = make([]float64, w)
	}
	c.Clear()
	return c
}

// Dots returns the canvas size in sub-pixels.
func (c *Canvas) Dots() (int, int) { return c.Width * 2, c.Height * 4 }

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Owner[i][j] = -1
			c.depth[i][j] = math.Inf(-1)
		}
	}
}

// Plot lights (x, y) and records owner if depth is nearer than the cell's
// current owner.
func (c *Canvas) Plot(x, y, owner int, depth float64) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= pixelMap[y%4][x%2]
	if owner >= 0 && depth >= c.depth[row][col] {
		c.Owner[row][col] = owner
		c.depth[row][col] = depth
	}
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1, owner int, depth float64) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Plot(x0, y0, owner, depth)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Render colors each cell with styles[owner mod len(styles)], merging runs of
// the same owner into one styled span.
func (c *Canvas) Render(styles []lipgloss.Style) string {
	if len(styles) == 0 {
		return c.String()
	}
	var b strings.Builder
	for r, row := range c.Grid {
		start := 0
		for col := 1; col <= len(row); col++ {
			if col < len(row) && c.Owner[r][col] == c.Owner[r][start] {
				continue
			}
			span := string(row[start:col])
			if o := c.Owner[r][start]; o >= 0 {
				span = styles[o%len(styles)].Render(span)
			}
			b.WriteString(span)
			start = col
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
