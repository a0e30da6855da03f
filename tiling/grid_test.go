package tiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringOutput(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(0, 0, Forward.NewTile(nil))
	g.Set(1, 0, Blank.NewTile(nil))
	g.Set(2, 0, Filler.NewTile(nil))
	g.Set(0, 1, Back.NewTile(nil))

	assert.Equal(t, "/.o\n\\??\n", g.String())
}

func TestAtSetOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2)
	assert.Nil(t, g.At(0, 0), "unplaced")
	assert.Nil(t, g.At(-1, 0))
	assert.Nil(t, g.At(0, 2))

	tile := Vertical.NewTile(nil)
	g.Set(1, 1, tile)
	assert.Same(t, tile, g.At(1, 1))
	assert.False(t, g.Exhausted(1, 1))
	g.markExhausted(1, 1)
	assert.True(t, g.Exhausted(1, 1))
}

func TestInBounds(t *testing.T) {
	g := NewGrid(4, 3)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{3, 2, true},
		{4, 0, false},
		{0, 3, false},
		{-1, 1, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.InBounds(tt.x, tt.y), "%d,%d", tt.x, tt.y)
	}
}

func TestFillerIsNotBlank(t *testing.T) {
	assert.True(t, Blank.NewTile(nil).IsBlank())
	filler := Filler.NewTile(nil)
	assert.False(t, filler.IsBlank())
	assert.Zero(t, filler.Lines())
}

func TestColoredPorts(t *testing.T) {
	g := NewGrid(2, 1)
	a := Vertical.NewTile(nil)
	g.Set(0, 0, a)
	g.Set(1, 0, Blank.NewTile(nil))
	assert.Zero(t, g.ColoredPorts())

	for _, p := range a.Lines().Ports() {
		assert.Equal(t, NoColor, a.Color(p))
	}
	p := a.Lines().Ports()[0]
	a.colors[p] = 2
	assert.True(t, a.Colored(p))
	assert.Equal(t, 1, g.ColoredPorts())
}
