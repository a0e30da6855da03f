package tiling

// Connectivity maps each port to the other ports of the same tile that a
// drawn line links it to. It is symmetric.
type Connectivity [NumPorts]PortSet

// Connect links a and b both ways.
func (c *Connectivity) Connect(a, b Port) {
	if a == b {
		return
	}
	c[a] = c[a].With(b)
	c[b] = c[b].With(a)
}

// Group returns p together with every port connected to it.
func (c *Connectivity) Group(p Port) PortSet {
	return c[p].With(p)
}

// Connected reports whether a line links a and b.
func (c *Connectivity) Connected(a, b Port) bool {
	return c[a].Has(b)
}

// TileType is the template shared by every cell using it. The set of
// implementations is closed: *Fixed, *Free and the Blank singleton.
type TileType interface {
	Name() string
	// Ports are the ports the type may draw lines at.
	Ports() PortSet
	// Connections is the static line relation. Free types return an empty
	// relation; their tiles carry their own.
	Connections() *Connectivity
	// Unconstrained ports accept any neighbor during placement.
	Unconstrained() PortSet
	MinConnections() int
	MaxConnections() int
	CheckSpecialConstraints() bool
	// PermittedTiling checks the tile provisionally placed at x,y against its
	// already placed neighbors.
	PermittedTiling(g *Grid, x, y int) bool
	// NewTile instantiates the type for one cell.
	NewTile(src Source) *Tile

	sealed()
}

// Design declares a tile type. Groups pairs each exposed port with a line
// group tag; ports sharing a tag are mutually connected. Tags must be > 0.
type Design struct {
	Name          string
	Groups        map[Port]int
	Unconstrained PortSet
	// MinConnections and MaxConnections default to the number of exposed ports.
	MinConnections, MaxConnections int
	CheckSpecialConstraints        bool
}

// Fixed is a tile type whose lines are the same on every tile.
type Fixed struct {
	name          string
	ports         PortSet
	conn          Connectivity
	unconstrained PortSet
	minConn       int
	maxConn       int
	special       bool
}

// NewFixed builds the symmetric connectivity of d once.
func NewFixed(d Design) *Fixed {
	f := &Fixed{
		name:          d.Name,
		unconstrained: d.Unconstrained,
		special:       d.CheckSpecialConstraints,
	}
	byGroup := make(map[int][]Port, len(d.Groups))
	for p := Port(0); p < NumPorts; p++ {
		g, ok := d.Groups[p]
		if !ok || g <= 0 {
			continue
		}
		f.ports = f.ports.With(p)
		for _, other := range byGroup[g] {
			f.conn.Connect(p, other)
		}
		byGroup[g] = append(byGroup[g], p)
	}
	if f.ports == 0 {
		// decorative fillers never constrain anything
		f.unconstrained = AllPorts
	}
	f.minConn, f.maxConn = d.MinConnections, d.MaxConnections
	if f.maxConn == 0 {
		f.maxConn = f.ports.Len()
	}
	if f.minConn == 0 {
		f.minConn = f.maxConn
	}
	return f
}

func (f *Fixed) Name() string { return f.name }
func (f *Fixed) Ports() PortSet { return f.ports }
func (f *Fixed) Connections() *Connectivity { return &f.conn }
func (f *Fixed) Unconstrained() PortSet { return f.unconstrained }
func (f *Fixed) MinConnections() int { return f.minConn }
func (f *Fixed) MaxConnections() int { return f.maxConn }
func (f *Fixed) CheckSpecialConstraints() bool { return f.special }
func (f *Fixed) sealed() {}

func (f *Fixed) NewTile(Source) *Tile {
	return newTile(f, &f.conn, f.ports)
}

func (f *Fixed) PermittedTiling(g *Grid, x, y int) bool {
	if f.ports == 0 {
		return true
	}
	return permitted(f, g, x, y)
}

// blankType is the type of empty cells.
type blankType struct{}

// Blank is the type of cells left empty. It has no ports and is never
// colored or checked.
var Blank TileType = blankType{}

var (
	noConnections Connectivity
	blankTile     = &Tile{Type: Blank, conn: &noConnections, colors: uncolored}
)

func (blankType) Name() string { return "blank" }
func (blankType) Ports() PortSet { return 0 }
func (blankType) Connections() *Connectivity { return &noConnections }
func (blankType) Unconstrained() PortSet { return AllPorts }
func (blankType) MinConnections() int { return 0 }
func (blankType) MaxConnections() int { return 0 }
func (blankType) CheckSpecialConstraints() bool { return false }
func (blankType) PermittedTiling(*Grid, int, int) bool { return true }
func (blankType) NewTile(Source) *Tile { return blankTile }
func (blankType) sealed() {}

// placedNeighbors are the neighbors decided before x,y in row-major order.
var placedNeighbors = []struct {
	dx, dy int
	pairs  []portPair
}{
	{0, -1, sharedPorts(0, -1)},
	{-1, -1, sharedPorts(-1, -1)},
	{1, -1, sharedPorts(1, -1)},
	{-1, 0, sharedPorts(-1, 0)},
}

// permitted is the adjacency predicate shared by every constrained type:
// at each coinciding port both tiles must agree on whether a line ends
// there, unless either side leaves that port unconstrained.
func permitted(t TileType, g *Grid, x, y int) bool {
	me := g.At(x, y)
	if me == nil {
		return true
	}
	for _, nb := range placedNeighbors {
		other := g.At(x+nb.dx, y+nb.dy)
		if other == nil {
			continue
		}
		for _, pp := range nb.pairs {
			if t.Unconstrained().Has(pp.mine) || other.Type.Unconstrained().Has(pp.theirs) {
				continue
			}
			if me.HasLine(pp.mine) != other.HasLine(pp.theirs) {
				return false
			}
		}
	}
	if t.CheckSpecialConstraints() {
		return special(me, g, x, y)
	}
	return true
}

// special forbids lines that dead-end into a cell without lines, and a tile that
// repeats the type of both its left and upper neighbors.
func special(me *Tile, g *Grid, x, y int) bool {
	for _, nb := range placedNeighbors {
		other := g.At(x+nb.dx, y+nb.dy)
		if other == nil || other.Lines() != 0 {
			continue
		}
		for _, pp := range nb.pairs {
			if me.HasLine(pp.mine) {
				return false
			}
		}
	}
	left, up := g.At(x-1, y), g.At(x, y-1)
	if left != nil && up != nil && left.Type == me.Type && up.Type == me.Type {
		return false
	}
	return true
}
