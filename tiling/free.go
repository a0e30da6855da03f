package tiling

import (
	"github.com/scottkirkwood/truchet"
)

// freeAttempts bounds how many pairings a Free tile tries before settling
// for a single chord.
const freeAttempts = 8

// Free is a "free design" tile type: each tile draws its own pairing of
// between MinConnections and MaxConnections of the type's ports, avoiding
// pairings whose chords cross.
type Free struct {
	name          string
	ports         PortSet
	unconstrained PortSet
	minConn       int
	maxConn       int
	special       bool
}

// NewFree uses the ports named in d.Groups; the tags themselves are ignored.
func NewFree(d Design) *Free {
	f := &Free{
		name:          d.Name,
		unconstrained: d.Unconstrained,
		special:       d.CheckSpecialConstraints,
	}
	for p, g := range d.Groups {
		if g > 0 && p >= 0 && p < NumPorts {
			f.ports = f.ports.With(p)
		}
	}
	n := f.ports.Len()
	f.minConn = truchet.ClampInt(d.MinConnections, 0, n)
	f.maxConn = truchet.ClampInt(d.MaxConnections, f.minConn, n)
	if d.MaxConnections == 0 {
		f.maxConn = n
	}
	return f
}

func (f *Free) Name() string { return f.name }
func (f *Free) Ports() PortSet { return f.ports }
func (f *Free) Connections() *Connectivity { return &noConnections }
func (f *Free) Unconstrained() PortSet { return f.unconstrained }
func (f *Free) MinConnections() int { return f.minConn }
func (f *Free) MaxConnections() int { return f.maxConn }
func (f *Free) CheckSpecialConstraints() bool { return f.special }
func (f *Free) sealed() {}

func (f *Free) PermittedTiling(g *Grid, x, y int) bool {
	return permitted(f, g, x, y)
}

// NewTile draws how many ports to connect, then shuffles the ports and
// pairs them off until the chords do not cross.
func (f *Free) NewTile(src Source) *Tile {
	k := f.minConn + intn(src, f.maxConn-f.minConn+1)
	k -= k % 2
	conn := &Connectivity{}
	if k < 2 {
		return newTile(f, conn, 0)
	}
	ports := f.ports.Ports()
	var chosen []Port
	for attempt := 0; attempt < freeAttempts; attempt++ {
		shuffle(ports, src)
		if !crossing(ports[:k]) {
			chosen = ports[:k]
			break
		}
	}
	if chosen == nil {
		chosen = ports[:2]
	}
	var lines PortSet
	for i := 0; i+1 < len(chosen); i += 2 {
		conn.Connect(chosen[i], chosen[i+1])
		lines = lines.With(chosen[i]).With(chosen[i+1])
	}
	return newTile(f, conn, lines)
}

// crossing reports whether chords between consecutive pairs of ports touch.
func crossing(paired []Port) bool {
	segs := make([]truchet.Segment, 0, len(paired)/2)
	for i := 0; i+1 < len(paired); i += 2 {
		segs = append(segs, truchet.Segment{A: paired[i].Point(), B: paired[i+1].Point()})
	}
	return truchet.AnyCrossing(segs)
}

// shuffle is a full Fisher-Yates pass.
func shuffle(ports []Port, src Source) {
	for i := len(ports) - 1; i > 0; i-- {
		j := intn(src, i+1)
		ports[i], ports[j] = ports[j], ports[i]
	}
}
