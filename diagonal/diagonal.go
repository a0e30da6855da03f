// Package diagonal draws the 10 PRINT pattern: every cell holds a forward
// or backward diagonal stroke, and some cells are left empty using the
// same blank distribution as the Truchet tiling.
package diagonal

import (
	"image/color"

	"github.com/fogleman/gg"
	"github.com/scottkirkwood/truchet/tiling"
)

// Options for a diagonal drawing.
type Options struct {
	Cols, Rows       int
	Cell             float64 // pixels
	LineWidth        float64
	BlankProbability float64
	// ForwardProbability is the chance of a / rather than a \.
	ForwardProbability float64
	Background         color.Color
	Forward, Back      color.Color
}

func DefaultOptions() Options {
	return Options{
		Cols:               40,
		Rows:               30,
		Cell:               20,
		LineWidth:          3,
		BlankProbability:   0.1,
		ForwardProbability: 0.5,
		Background:         color.Gray{245},
		Forward:            color.Black,
		Back:               color.Black,
	}
}

// Cell kinds.
const (
	Empty = iota
	Forward
	Back
)

// Layout decides every cell, row-major. Per cell it draws the blank
// decision first and, for non-blank cells, one draw for the direction.
func Layout(opts Options, src tiling.Source) [][]int {
	blanks := tiling.NewBlankDistribution(opts.BlankProbability)
	cells := make([][]int, opts.Rows)
	for y := range cells {
		cells[y] = make([]int, opts.Cols)
		blanks.StartRow()
		for x := range cells[y] {
			switch {
			case blanks.IsBlank(x, y, src):
				cells[y][x] = Empty
			case src.Next() < opts.ForwardProbability:
				cells[y][x] = Forward
			default:
				cells[y][x] = Back
			}
		}
	}
	return cells
}

// Draw lays out the cells and strokes them onto ctx.
func Draw(ctx *gg.Context, opts Options, src tiling.Source) [][]int {
	cells := Layout(opts, src)
	if opts.Background != nil {
		ctx.SetColor(opts.Background)
		ctx.Clear()
	}
	ctx.SetLineWidth(opts.LineWidth)
	ctx.SetLineCapRound()
	for y, row := range cells {
		for x, kind := range row {
			x0, y0 := float64(x)*opts.Cell, float64(y)*opts.Cell
			x1, y1 := x0+opts.Cell, y0+opts.Cell
			switch kind {
			case Forward:
				ctx.SetColor(opts.Forward)
				ctx.DrawLine(x0, y1, x1, y0)
			case Back:
				ctx.SetColor(opts.Back)
				ctx.DrawLine(x0, y0, x1, y1)
			default:
				continue
			}
			ctx.Stroke()
		}
	}
	return cells
}
