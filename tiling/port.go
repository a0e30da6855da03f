package tiling

import (
	"fmt"
	"image"
	"math/bits"
)

// Port is one of 16 evenly spaced points on a cell's perimeter, numbered
// clockwise from the top-left corner. Every side has a corner, three inner
// points and ends at the next corner.
type Port int8

// NumPorts is the number of perimeter positions of a cell.
const NumPorts = 16

// Named corners and edge midpoints.
const (
	TopLeft     Port = 0
	Top         Port = 2
	TopRight    Port = 4
	Right       Port = 6
	BottomRight Port = 8
	Bottom      Port = 10
	BottomLeft  Port = 12
	Left        Port = 14
)

// ParsePort checks that n names a port.
func ParsePort(n int) (Port, error) {
	if n < 0 || n >= NumPorts {
		return 0, fmt.Errorf("%w: %d", ErrBadPort, n)
	}
	return Port(n), nil
}

// IsCorner reports whether p sits on a corner of the cell.
func (p Port) IsCorner() bool {
	return p%4 == 0
}

// Point returns the port position on a 4x4 grid with the cell's
// top-left corner at 0,0 and y growing downwards.
func (p Port) Point() image.Point {
	off := int(p % 4)
	switch p / 4 {
	case 0:
		return image.Point{off, 0}
	case 1:
		return image.Point{4, off}
	case 2:
		return image.Point{4 - off, 4}
	}
	return image.Point{0, 4 - off}
}

// PortSet is a bit set of ports.
type PortSet uint16

// AllPorts has every port.
const AllPorts PortSet = 1<<NumPorts - 1

// Corners and Midpoints are the two common port layouts.
var (
	Corners   = NewPortSet(TopLeft, TopRight, BottomRight, BottomLeft)
	Midpoints = NewPortSet(Top, Right, Bottom, Left)
)

func NewPortSet(ports ...Port) PortSet {
	var s PortSet
	for _, p := range ports {
		s = s.With(p)
	}
	return s
}

func (s PortSet) Has(p Port) bool {
	return s&(1<<uint(p)) != 0
}

func (s PortSet) With(p Port) PortSet {
	return s | 1<<uint(p)
}

func (s PortSet) Without(p Port) PortSet {
	return s &^ (1 << uint(p))
}

func (s PortSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// Ports lists the members in ascending order.
func (s PortSet) Ports() []Port {
	ports := make([]Port, 0, s.Len())
	for p := Port(0); p < NumPorts; p++ {
		if s.Has(p) {
			ports = append(ports, p)
		}
	}
	return ports
}

// Neighbor is a port of an adjacent cell that coincides with a given port.
type Neighbor struct {
	X, Y int
	Port Port
}

type offset struct {
	dx, dy int
	port   Port
}

// neighborTable[p] lists, for port p, the coinciding port of each adjacent
// cell. Order is left, right, up, down, then the diagonals.
var neighborTable = buildNeighborTable()

func buildNeighborTable() [NumPorts][]offset {
	var t [NumPorts][]offset
	// corners touch two edge neighbors and one diagonal neighbor
	t[TopLeft] = []offset{{-1, 0, TopRight}, {0, -1, BottomLeft}, {-1, -1, BottomRight}}
	t[TopRight] = []offset{{1, 0, TopLeft}, {0, -1, BottomRight}, {1, -1, BottomLeft}}
	t[BottomRight] = []offset{{1, 0, BottomLeft}, {0, 1, TopRight}, {1, 1, TopLeft}}
	t[BottomLeft] = []offset{{-1, 0, BottomRight}, {0, 1, TopLeft}, {-1, 1, TopRight}}
	for i := Port(1); i < 4; i++ {
		t[i] = []offset{{0, -1, 12 - i}}   // top side mirrors bottom
		t[4+i] = []offset{{1, 0, 16 - i}}  // right side mirrors left
		t[8+i] = []offset{{0, 1, 4 - i}}   // bottom side mirrors top
		t[12+i] = []offset{{-1, 0, 8 - i}} // left side mirrors right
	}
	return t
}

// Neighbors returns the adjacent cells sharing port p of cell x,y, with the
// coinciding port on each, dropping cells outside a cols x rows grid.
func Neighbors(p Port, x, y, cols, rows int) []Neighbor {
	offs := neighborTable[p]
	out := make([]Neighbor, 0, len(offs))
	for _, o := range offs {
		nx, ny := x+o.dx, y+o.dy
		if nx < 0 || ny < 0 || nx >= cols || ny >= rows {
			continue
		}
		out = append(out, Neighbor{X: nx, Y: ny, Port: o.port})
	}
	return out
}

// portPair is a port of a cell and the port of one neighbor at the same spot.
type portPair struct {
	mine, theirs Port
}

// sharedPorts returns every port pair coinciding between a cell and the
// neighbor at dx,dy.
func sharedPorts(dx, dy int) []portPair {
	var pairs []portPair
	for p := Port(0); p < NumPorts; p++ {
		for _, o := range neighborTable[p] {
			if o.dx == dx && o.dy == dy {
				pairs = append(pairs, portPair{p, o.port})
			}
		}
	}
	return pairs
}
