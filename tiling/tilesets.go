package tiling

import (
	"fmt"
	"sort"
)

var (
	// Forward and Back are the two diagonal Truchet tiles.
	Forward = NewFixed(Design{
		Name:          "/",
		Groups:        map[Port]int{BottomLeft: 1, TopRight: 1},
		Unconstrained: Corners,
	})
	Back = NewFixed(Design{
		Name:          "\\",
		Groups:        map[Port]int{TopLeft: 1, BottomRight: 1},
		Unconstrained: Corners,
	})

	// ArcA and ArcB are the quarter-circle Truchet tiles. Every tile has a line
	// at every midpoint so any arrangement is permitted.
	ArcA = NewFixed(Design{
		Name:   "(",
		Groups: map[Port]int{Top: 1, Left: 1, Right: 2, Bottom: 2},
	})
	ArcB = NewFixed(Design{
		Name:   ")",
		Groups: map[Port]int{Top: 1, Right: 1, Bottom: 2, Left: 2},
	})

	Plus = NewFixed(Design{
		Name:   "+",
		Groups: map[Port]int{Top: 1, Bottom: 1, Left: 2, Right: 2},
	})
	Vertical = NewFixed(Design{
		Name:   "|",
		Groups: map[Port]int{Top: 1, Bottom: 1},
	})
	Horizontal = NewFixed(Design{
		Name:   "-",
		Groups: map[Port]int{Left: 1, Right: 1},
	})
	// Filler draws nothing and fits anywhere.
	Filler = NewFixed(Design{Name: "o"})
)

var tileSets = map[string]func() []WeightedType{
	"diagonal": func() []WeightedType {
		return []WeightedType{{Forward, 1}, {Back, 1}}
	},
	// lattice forces line presence to agree at shared corners, which only
	// alternating diagonals satisfy.
	"lattice": func() []WeightedType {
		fwd := NewFixed(Design{
			Name:                    "/",
			Groups:                  map[Port]int{BottomLeft: 1, TopRight: 1},
			CheckSpecialConstraints: true,
		})
		back := NewFixed(Design{
			Name:                    "\\",
			Groups:                  map[Port]int{TopLeft: 1, BottomRight: 1},
			CheckSpecialConstraints: true,
		})
		return []WeightedType{{fwd, 1}, {back, 1}}
	},
	"arcs": func() []WeightedType {
		return []WeightedType{{ArcA, 1}, {ArcB, 1}}
	},
	"cross": func() []WeightedType {
		return []WeightedType{
			{ArcA, 1}, {ArcB, 1}, {Plus, 0.5},
			{Vertical, 0.5}, {Horizontal, 0.5}, {Filler, 0.2},
		}
	},
	"free": func() []WeightedType {
		free := NewFree(Design{
			Name:           "*",
			Groups:         portsAsGroups(Corners | Midpoints),
			Unconstrained:  Corners,
			MinConnections: 2,
			MaxConnections: 6,
		})
		return []WeightedType{{free, 2}, {ArcA, 1}, {ArcB, 1}}
	},
}

func portsAsGroups(s PortSet) map[Port]int {
	groups := make(map[Port]int, s.Len())
	for _, p := range s.Ports() {
		groups[p] = 1
	}
	return groups
}

// TileSet returns a fresh copy of a built-in tile table.
func TileSet(name string) ([]WeightedType, error) {
	build, ok := tileSets[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownTileSet, name)
	}
	return build(), nil
}

// TileSetNames lists the built-in tile tables.
func TileSetNames() []string {
	names := make([]string, 0, len(tileSets))
	for name := range tileSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
