package tiling

import (
	log "github.com/sirupsen/logrus"
)

// WeightedType is an entry of the tile table: a type and how often to draw it.
// A zero Frequency excludes the type.
type WeightedType struct {
	Type      TileType
	Frequency float64
}

// Placer fills non-blank cells with tile types drawn from a weighted table,
// checking each against its already placed neighbors.
type Placer struct {
	types []TileType
	cum   []float64
	total float64
	src   Source
	// scratch for the attempted set, reset per cell
	attempted []bool
}

func NewPlacer(table []WeightedType, src Source) *Placer {
	p := &Placer{
		types:     make([]TileType, len(table)),
		cum:       make([]float64, len(table)),
		src:       src,
		attempted: make([]bool, len(table)),
	}
	for i, wt := range table {
		p.types[i] = wt.Type
		if wt.Frequency > 0 {
			p.total += wt.Frequency
		}
		p.cum[i] = p.total
	}
	if p.total <= 0 {
		log.Debug("No tile type has a positive frequency, every cell stays blank")
	}
	return p
}

// Place decides the tile at x,y. It returns false when every type was tried
// without satisfying the adjacency predicate; the last one tried is kept.
func (p *Placer) Place(g *Grid, x, y int) bool {
	if p.total <= 0 {
		g.Set(x, y, blankTile)
		return true
	}
	n := len(p.types)
	tried := 0
	for i := range p.attempted {
		p.attempted[i] = p.weight(i) <= 0
		if p.attempted[i] {
			tried++
		}
	}
	for {
		i := p.pick(p.src.Next() * p.total)
		t := p.types[i]
		g.Set(x, y, t.NewTile(p.src))
		if t.PermittedTiling(g, x, y) {
			return true
		}
		p.attempted[i] = true
		tried++
		if tried >= n {
			g.markExhausted(x, y)
			log.Debugf("Cell %d,%d: no tile type fits, keeping %q", x, y, t.Name())
			return false
		}
	}
}

func (p *Placer) weight(i int) float64 {
	if i == 0 {
		return p.cum[0]
	}
	return p.cum[i] - p.cum[i-1]
}

// pick maps r in [0,total) onto a type not attempted yet. It scans down from
// the top of the cumulative table to r's bucket and keeps going down past
// attempted types; only when none is left below does it take the highest
// type still available.
func (p *Placer) pick(r float64) int {
	j := len(p.cum) - 1
	for j > 0 && (r < p.cum[j-1] || p.attempted[j]) {
		j--
	}
	if !p.attempted[j] {
		return j
	}
	for j = len(p.cum) - 1; j >= 0; j-- {
		if !p.attempted[j] {
			break
		}
	}
	return j
}
