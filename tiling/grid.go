package tiling

import (
	"strings"
	"unicode/utf8"
)

// Color indexes the palette. NoColor marks a port not yet colored.
type Color int

const NoColor Color = -1

var uncolored = func() (c [NumPorts]Color) {
	for i := range c {
		c[i] = NoColor
	}
	return c
}()

// Tile is a TileType instantiated for one cell, with the colors assigned
// to its ports.
type Tile struct {
	Type   TileType
	conn   *Connectivity
	lines  PortSet
	colors [NumPorts]Color
}

func newTile(t TileType, conn *Connectivity, lines PortSet) *Tile {
	return &Tile{Type: t, conn: conn, lines: lines, colors: uncolored}
}

// IsBlank reports whether the cell was left empty.
func (t *Tile) IsBlank() bool {
	return t.Type == Blank
}

// Lines are the ports where this tile draws a line.
func (t *Tile) Lines() PortSet {
	return t.lines
}

func (t *Tile) HasLine(p Port) bool {
	return t.lines.Has(p)
}

// Connections is the line relation of this particular tile.
func (t *Tile) Connections() *Connectivity {
	return t.conn
}

// Color returns the color of p, or NoColor.
func (t *Tile) Color(p Port) Color {
	return t.colors[p]
}

func (t *Tile) Colored(p Port) bool {
	return t.colors[p] != NoColor
}

// Grid is a row-major array of tiles. Cells are nil until placed.
type Grid struct {
	Cols, Rows int
	cells      []*Tile
	exhausted  []bool
}

func NewGrid(cols, rows int) *Grid {
	return &Grid{
		Cols:      cols,
		Rows:      rows,
		cells:     make([]*Tile, cols*rows),
		exhausted: make([]bool, cols*rows),
	}
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Cols && y < g.Rows
}

// At returns the tile at x,y, or nil when out of bounds or not placed yet.
func (g *Grid) At(x, y int) *Tile {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.cells[y*g.Cols+x]
}

// Set places t at x,y.
func (g *Grid) Set(x, y int, t *Tile) {
	g.cells[y*g.Cols+x] = t
}

// Exhausted reports whether placement tried every tile type at x,y without
// satisfying the adjacency predicate and kept the last one.
func (g *Grid) Exhausted(x, y int) bool {
	return g.exhausted[y*g.Cols+x]
}

func (g *Grid) markExhausted(x, y int) {
	g.exhausted[y*g.Cols+x] = true
}

// ColoredPorts counts the colored ports over the whole grid.
func (g *Grid) ColoredPorts() int {
	n := 0
	for _, t := range g.cells {
		if t == nil {
			continue
		}
		for _, p := range t.lines.Ports() {
			if t.Colored(p) {
				n++
			}
		}
	}
	return n
}

// String draws one rune per cell: the first rune of the type name,
// '.' for blanks and '?' for unplaced cells.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			t := g.At(x, y)
			switch {
			case t == nil:
				sb.WriteRune('?')
			case t.IsBlank():
				sb.WriteRune('.')
			default:
				r, _ := utf8.DecodeRuneInString(t.Type.Name())
				sb.WriteRune(r)
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
