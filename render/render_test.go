package render

import (
	"context"
	"fmt"
	"image/color"
	"testing"

	"github.com/scottkirkwood/truchet"
	"github.com/scottkirkwood/truchet/tiling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder logs canvas calls.
type recorder struct {
	calls []string
}

func (r *recorder) SetFillColor(col color.Color) { r.calls = append(r.calls, "fill") }
func (r *recorder) SetStrokeColor(col color.Color) { r.calls = append(r.calls, fmt.Sprint("color ", col)) }
func (r *recorder) SetStrokeWidth(w float64) { r.calls = append(r.calls, fmt.Sprint("width ", w)) }
func (r *recorder) MoveTo(x, y float64) { r.calls = append(r.calls, fmt.Sprint("move ", x, y)) }
func (r *recorder) QuadTo(cpx, cpy, x, y float64) {
	r.calls = append(r.calls, fmt.Sprint("quad ", cpx, cpy, x, y))
}
func (r *recorder) FillRect(x, y, w, h float64) { r.calls = append(r.calls, fmt.Sprint("rect ", x, y, w, h)) }
func (r *recorder) Stroke() { r.calls = append(r.calls, "stroke") }

func TestGridSingleTile(t *testing.T) {
	opts := tiling.Options{
		Cols: 1, Rows: 1,
		Tiles:           []tiling.WeightedType{{Type: tiling.Forward, Frequency: 1}},
		FlowProbability: 1,
		NumColors:       1,
	}
	g, err := tiling.Generate(context.Background(), opts, truchet.NewRandom(1))
	require.NoError(t, err)

	rec := &recorder{}
	red := color.RGBA{255, 0, 0, 255}
	n := Grid(rec, g, color.Palette{red}, Options{CellWidth: 40, CellHeight: 40, StrokeWidth: 2})
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{
		"width 2",
		fmt.Sprint("color ", red),
		"move 40 0",
		"quad 20 20 0 40",
		"stroke",
	}, rec.calls)
}

func TestGridSkipsBlanks(t *testing.T) {
	opts := tiling.DefaultOptions()
	opts.Cols, opts.Rows = 4, 4
	opts.BlankProbability = 1
	g, err := tiling.Generate(context.Background(), opts, truchet.NewRandom(1))
	require.NoError(t, err)

	rec := &recorder{}
	n := Grid(rec, g, color.Palette{color.Black}, Options{CellWidth: 10, CellHeight: 10, Background: color.White})
	assert.Zero(t, n)
	assert.Equal(t, []string{"fill", "rect 0 0 40 40", "width 0"}, rec.calls)
}

func TestGridOnCanvas(t *testing.T) {
	opts := tiling.DefaultOptions()
	opts.Cols, opts.Rows = 5, 5
	g, err := tiling.Generate(context.Background(), opts, truchet.NewRandom(3))
	require.NoError(t, err)
	ctx := truchet.NewContext(200, 200)
	pal := color.Palette{color.Black, color.White}
	// arcs draw two strokes per tile
	assert.Equal(t, 50, Grid(ctx, g, pal, Options{CellWidth: 40, CellHeight: 40, StrokeWidth: 3}))
}
