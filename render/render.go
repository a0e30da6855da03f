// Package render draws a finished tiling grid.
package render

import (
	"image/color"

	"github.com/scottkirkwood/truchet/tiling"
)

// Canvas is the drawing surface; truchet.Context implements it.
type Canvas interface {
	SetFillColor(col color.Color)
	SetStrokeColor(col color.Color)
	SetStrokeWidth(width float64)
	MoveTo(x, y float64)
	QuadTo(cpx, cpy, x, y float64)
	FillRect(x, y, w, h float64)
	Stroke()
}

// Options controls how a grid is drawn.
type Options struct {
	CellWidth, CellHeight float64
	Background            color.Color // nil leaves the canvas as is
	StrokeWidth           float64
}

// Grid strokes every connection of every tile, bending each line through
// the cell center, in the color of its ports. It returns the number of
// strokes drawn.
func Grid(c Canvas, g *tiling.Grid, pal color.Palette, opts Options) int {
	if opts.Background != nil {
		c.SetFillColor(opts.Background)
		c.FillRect(0, 0, float64(g.Cols)*opts.CellWidth, float64(g.Rows)*opts.CellHeight)
	}
	c.SetStrokeWidth(opts.StrokeWidth)
	strokes := 0
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			t := g.At(x, y)
			if t == nil || t.IsBlank() {
				continue
			}
			strokes += tile(c, t, pal, float64(x)*opts.CellWidth, float64(y)*opts.CellHeight, opts)
		}
	}
	return strokes
}

func tile(c Canvas, t *tiling.Tile, pal color.Palette, ox, oy float64, opts Options) int {
	sx, sy := opts.CellWidth/4, opts.CellHeight/4
	cx, cy := ox+2*sx, oy+2*sy
	conn := t.Connections()
	strokes := 0
	for _, p := range t.Lines().Ports() {
		col := t.Color(p)
		if col == tiling.NoColor || len(pal) == 0 {
			continue
		}
		for _, q := range conn[p].Ports() {
			if q < p {
				continue
			}
			a, b := p.Point(), q.Point()
			c.SetStrokeColor(pal[int(col)%len(pal)])
			c.MoveTo(ox+float64(a.X)*sx, oy+float64(a.Y)*sy)
			c.QuadTo(cx, cy, ox+float64(b.X)*sx, oy+float64(b.Y)*sy)
			c.Stroke()
			strokes++
		}
	}
	return strokes
}
