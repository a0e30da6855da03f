package tiling

import (
	"context"
	"errors"
	"testing"

	"github.com/scottkirkwood/truchet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func colorsOf(g *Grid) [][NumPorts]Color {
	out := make([][NumPorts]Color, 0, g.Cols*g.Rows)
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			out = append(out, g.At(x, y).colors)
		}
	}
	return out
}

func TestGenerateDeterministic(t *testing.T) {
	for _, name := range TileSetNames() {
		t.Run(name, func(t *testing.T) {
			tiles, err := TileSet(name)
			require.NoError(t, err)
			opts := DefaultOptions()
			opts.Tiles = tiles
			opts.BlankProbability = 0.2

			src := truchet.NewRandom(0x5eed)
			first, err := Generate(context.Background(), opts, src)
			require.NoError(t, err)

			src.Reset()
			second, err := Generate(context.Background(), opts, src)
			require.NoError(t, err)

			assert.Equal(t, first.String(), second.String())
			assert.Equal(t, colorsOf(first), colorsOf(second))

			other, err := Generate(context.Background(), opts, truchet.NewRandom(0x5eee))
			require.NoError(t, err)
			assert.NotEqual(t, colorsOf(first), colorsOf(other))
		})
	}
}

func TestGenerateYieldsPerRow(t *testing.T) {
	opts := DefaultOptions()
	opts.Cols, opts.Rows = 5, 4
	var rows []int
	opts.OnRow = func(y int) { rows = append(rows, y) }
	_, err := Generate(context.Background(), opts, truchet.NewRandom(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, rows)
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	opts := DefaultOptions()
	rows := 0
	opts.OnRow = func(int) {
		rows++
		cancel()
	}
	g, err := Generate(ctx, opts, truchet.NewRandom(1))
	assert.Nil(t, g)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, rows, "the row in progress completes before stopping")
}

func TestGridSize(t *testing.T) {
	tests := []struct {
		name       string
		opts       Options
		cols, rows int
	}{
		{"square", Options{Width: 800, Height: 600, CellSize: 40}, 20, 15},
		{"tall cells", Options{Width: 800, Height: 600, CellSize: 40, AspectRatio: 1.5}, 20, 10},
		{"explicit", Options{Width: 800, Height: 600, CellSize: 40, Cols: 3, Rows: 2}, 3, 2},
		{"never empty", Options{Width: 10, Height: 10, CellSize: 40}, 1, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cols, rows := tc.opts.GridSize()
			assert.Equal(t, tc.cols, cols)
			assert.Equal(t, tc.rows, rows)
		})
	}
}

func TestTileSetUnknown(t *testing.T) {
	_, err := TileSet("penrose")
	assert.True(t, errors.Is(err, ErrUnknownTileSet))
	assert.Equal(t, []string{"arcs", "cross", "diagonal", "free", "lattice"}, TileSetNames())
}

func TestDefaultOptionsTiles(t *testing.T) {
	arcs, err := TileSet("arcs")
	require.NoError(t, err)
	assert.Equal(t, arcs, DefaultOptions().Tiles)
}
