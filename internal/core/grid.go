package core

import (
	"fmt"
	"strings"
)

// Position is a cell coordinate. The origin is the top-left corner.
type Position struct {
	X, Y int
}

// Offset returns the position shifted by (dx, dy).
func (p Position) Offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Set writes v at (x, y). Out-of-range writes are ignored.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return
	}
	g.data[g.Index(x, y)] = v
}

// At returns the value at (x, y), or zero outside the grid.
func (g *ByteGrid) At(x, y int) uint8 {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return 0
	}
	return g.data[g.Index(x, y)]
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// RuneGrid is a character snapshot of a board. Empty cells hold a space.
type RuneGrid struct {
	W, H int
	data []rune
}

// NewRuneGrid allocates a blank grid with the given dimensions.
func NewRuneGrid(w, h int) *RuneGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &RuneGrid{W: w, H: h, data: make([]rune, w*h)}
	for i := range g.data {
		g.data[i] = ' '
	}
	return g
}

// Set writes r at (x, y). Out-of-range writes are ignored.
func (g *RuneGrid) Set(x, y int, r rune) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return
	}
	g.data[y*g.W+x] = r
}

// At returns the rune at (x, y), or a space outside the grid.
func (g *RuneGrid) At(x, y int) rune {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return ' '
	}
	return g.data[y*g.W+x]
}

// Row returns row y as a string.
func (g *RuneGrid) Row(y int) string {
	if y < 0 || y >= g.H {
		return ""
	}
	return string(g.data[y*g.W : (y+1)*g.W])
}

// String joins all rows with newlines, without a border.
func (g *RuneGrid) String() string {
	var b strings.Builder
	for y := 0; y < g.H; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(g.Row(y))
	}
	return b.String()
}
