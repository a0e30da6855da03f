package tiling

import (
	"testing"

	"github.com/scottkirkwood/truchet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFixedSymmetric(t *testing.T) {
	tt := NewFixed(Design{
		Name:   "y",
		Groups: map[Port]int{Top: 1, BottomLeft: 1, BottomRight: 1, Left: 2, Right: 2},
	})
	conn := tt.Connections()
	group := []Port{Top, BottomRight, BottomLeft}
	for _, a := range group {
		for _, b := range group {
			if a != b {
				assert.True(t, conn.Connected(a, b), "%d-%d", a, b)
			}
		}
		assert.False(t, conn.Connected(a, Left))
	}
	assert.True(t, conn.Connected(Right, Left))
	assert.Equal(t, NewPortSet(Top, Right, BottomRight, BottomLeft, Left), tt.Ports())
	assert.Equal(t, 5, tt.MinConnections())
	assert.Equal(t, 5, tt.MaxConnections())
}

func TestZeroPortTypeAlwaysPermitted(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, Vertical.NewTile(nil))
	g.Set(1, 0, Horizontal.NewTile(nil))
	g.Set(0, 1, Horizontal.NewTile(nil))
	g.Set(1, 1, Filler.NewTile(nil))
	assert.True(t, Filler.PermittedTiling(g, 1, 1))
	assert.Equal(t, AllPorts, Filler.Unconstrained())
	assert.True(t, Blank.PermittedTiling(g, 1, 1))
}

var (
	looseLeft = NewFixed(Design{
		Name:          "~",
		Groups:        map[Port]int{Left: 1, Right: 1},
		Unconstrained: NewPortSet(Left),
	})
	looseRight = NewFixed(Design{
		Name:          "~",
		Groups:        map[Port]int{Left: 1, Right: 1},
		Unconstrained: NewPortSet(Right),
	})
)

func TestPermittedTiling(t *testing.T) {
	tests := []struct {
		name       string
		left, this TileType
		want       bool
	}{
		{"straight run", Horizontal, Horizontal, true},
		{"line into no line", Horizontal, Vertical, false},
		{"no line into line", Vertical, Horizontal, false},
		{"parallel verticals", Vertical, Vertical, true},
		{"arcs always fit", ArcA, ArcB, true},
		{"filler is unconstrained", Filler, Horizontal, true},
		{"blank is unconstrained", Blank, Horizontal, true},
		{"diagonal corners are unconstrained", Forward, Forward, true},
		{"placed tile unconstrained on its left", Vertical, looseLeft, true},
		{"neighbor unconstrained on its right", looseRight, Vertical, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(2, 1)
			g.Set(0, 0, tc.left.NewTile(nil))
			g.Set(1, 0, tc.this.NewTile(nil))
			assert.Equal(t, tc.want, tc.this.PermittedTiling(g, 1, 0))
		})
	}
}

func TestPermittedTilingLattice(t *testing.T) {
	set, err := TileSet("lattice")
	require.NoError(t, err)
	fwd, back := set[0].Type, set[1].Type

	g := NewGrid(2, 2)
	g.Set(0, 0, fwd.NewTile(nil))
	g.Set(1, 0, fwd.NewTile(nil))
	assert.False(t, fwd.PermittedTiling(g, 1, 0), "same diagonal side by side")
	g.Set(1, 0, back.NewTile(nil))
	assert.True(t, back.PermittedTiling(g, 1, 0))

	// below a / comes a \, then the checkerboard continues
	g.Set(0, 1, back.NewTile(nil))
	assert.True(t, back.PermittedTiling(g, 0, 1))
	g.Set(1, 1, fwd.NewTile(nil))
	assert.True(t, fwd.PermittedTiling(g, 1, 1))
}

func TestSpecialConstraints(t *testing.T) {
	dead := NewFixed(Design{
		Name:                    "-",
		Groups:                  map[Port]int{Left: 1, Right: 1},
		CheckSpecialConstraints: true,
	})
	g := NewGrid(2, 2)
	g.Set(0, 0, Filler.NewTile(nil))
	g.Set(1, 0, dead.NewTile(nil))
	assert.False(t, dead.PermittedTiling(g, 1, 0), "line ends on a filler")

	g.Set(0, 0, dead.NewTile(nil))
	assert.True(t, dead.PermittedTiling(g, 1, 0))

	// same type on the left and above
	g.Set(0, 1, dead.NewTile(nil))
	g.Set(1, 1, dead.NewTile(nil))
	assert.False(t, dead.PermittedTiling(g, 1, 1))
}

func TestFreeTile(t *testing.T) {
	free := NewFree(Design{
		Name:           "*",
		Groups:         portsAsGroups(Corners | Midpoints),
		MinConnections: 2,
		MaxConnections: 6,
	})
	assert.Equal(t, 8, free.Ports().Len())
	src := truchet.NewRandom(42)
	for i := 0; i < 200; i++ {
		tile := free.NewTile(src)
		n := tile.Lines().Len()
		assert.True(t, n >= 2 && n <= 6 && n%2 == 0, "connected ports %d", n)
		assert.Zero(t, tile.Lines()&^free.Ports(), "lines outside the type's ports")

		var paired []Port
		for _, p := range tile.Lines().Ports() {
			partners := tile.Connections()[p]
			require.Equal(t, 1, partners.Len(), "port %d", p)
			q := partners.Ports()[0]
			assert.True(t, tile.Connections().Connected(q, p))
			if p < q {
				paired = append(paired, p, q)
			}
		}
		assert.False(t, crossing(paired), "chords %v cross", paired)
	}
}

func TestFreeBounds(t *testing.T) {
	free := NewFree(Design{Groups: portsAsGroups(Midpoints), MinConnections: 9})
	assert.Equal(t, 4, free.MinConnections())
	assert.Equal(t, 4, free.MaxConnections())
}
