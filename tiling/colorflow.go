package tiling

import (
	log "github.com/sirupsen/logrus"
)

// maxLookahead bounds the Fisher-Yates pass over a color group; only a few
// replacement colors are ever needed at one tile boundary.
const maxLookahead = 3

// flowEntry is a port waiting to be colored.
type flowEntry struct {
	x, y  int
	port  Port
	color Color
}

// flowStack is the explicit work stack of the flood fill.
type flowStack []flowEntry

func (s *flowStack) push(e flowEntry) {
	*s = append(*s, e)
}

func (s *flowStack) pop() flowEntry {
	old := *s
	e := old[len(old)-1]
	*s = old[:len(old)-1]
	return e
}

func (s flowStack) empty() bool {
	return len(s) == 0
}

// ColorFlow assigns a palette index to every line port of a grid so that
// connected ports share a color, except where a switch is drawn with
// probability 1-FlowProbability.
type ColorFlow struct {
	NumColors       int
	GroupSize       int
	FlowProbability float64
	// OnColor, when set, is called after each port is colored.
	OnColor func(x, y int, p Port, c Color)

	src   Source
	usage []int
	stack flowStack
}

func NewColorFlow(numColors, groupSize int, flowProbability float64, src Source) *ColorFlow {
	if numColors < 1 {
		numColors = 1
	}
	if numColors == 1 {
		// nothing to choose from
		flowProbability = 1
		groupSize = 1
	}
	if groupSize < 1 || groupSize > numColors {
		groupSize = numColors
	}
	return &ColorFlow{
		NumColors:       numColors,
		GroupSize:       groupSize,
		FlowProbability: flowProbability,
		src:             src,
		usage:           make([]int, numColors),
	}
}

// Usage is the histogram of colored ports per color.
func (cf *ColorFlow) Usage() []int {
	return cf.usage
}

// Fill colors every uncolored line port of g in row-major, then port order.
// With a group size of one the first seed color is reused for every later
// seed, so the whole grid ends up a single color.
func (cf *ColorFlow) Fill(g *Grid) {
	global := NoColor
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			t := g.At(x, y)
			if t == nil || t.IsBlank() {
				continue
			}
			for _, p := range t.lines.Ports() {
				if t.Colored(p) {
					continue
				}
				seed := global
				if seed == NoColor {
					seed = cf.seedColor()
					if cf.GroupSize == 1 {
						global = seed
					}
				}
				cf.stack.push(flowEntry{x, y, p, seed})
				cf.flood(g)
			}
		}
	}
	log.Debugf("Color usage %v", cf.usage)
}

// seedColor picks uniformly among the least used colors.
func (cf *ColorFlow) seedColor() Color {
	least := cf.usage[0]
	for _, n := range cf.usage[1:] {
		if n < least {
			least = n
		}
	}
	var candidates []Color
	for c, n := range cf.usage {
		if n == least {
			candidates = append(candidates, Color(c))
		}
	}
	if len(candidates) == 1 {
		return candidates[0]
	}
	return candidates[intn(cf.src, len(candidates))]
}

func (cf *ColorFlow) flood(g *Grid) {
	for !cf.stack.empty() {
		e := cf.stack.pop()
		t := g.At(e.x, e.y)
		if t.Colored(e.port) {
			continue
		}
		colored := cf.colorGroup(t, e)

		var next []Neighbor
		var taken []Color
		for _, p := range colored.Ports() {
			for _, nb := range Neighbors(p, e.x, e.y, g.Cols, g.Rows) {
				other := g.At(nb.X, nb.Y)
				if other == nil || !other.HasLine(nb.Port) {
					continue
				}
				if other.Colored(nb.Port) {
					taken = append(taken, other.Color(nb.Port))
					continue
				}
				next = append(next, nb)
			}
		}
		if len(next) == 0 {
			continue
		}
		if cf.src.Next() < cf.FlowProbability {
			for _, nb := range next {
				cf.stack.push(flowEntry{nb.X, nb.Y, nb.Port, e.color})
			}
			continue
		}
		perm := cf.permutation(e.color, taken)
		for i, nb := range next {
			cf.stack.push(flowEntry{nb.X, nb.Y, nb.Port, perm[i%len(perm)]})
		}
	}
}

// colorGroup colors e.port and every port connected to it on the same tile,
// returning the ports it colored.
func (cf *ColorFlow) colorGroup(t *Tile, e flowEntry) PortSet {
	var colored PortSet
	for _, p := range t.conn.Group(e.port).Ports() {
		if !t.HasLine(p) || t.Colored(p) {
			continue
		}
		t.colors[p] = e.color
		cf.usage[e.color]++
		colored = colored.With(p)
		if cf.OnColor != nil {
			cf.OnColor(e.x, e.y, p, e.color)
		}
	}
	return colored
}

// permutation returns the members of seed's color group, minus seed and the
// colors in taken, with at most the first maxLookahead positions shuffled.
// It falls back to the group without taken, then to seed alone.
func (cf *ColorFlow) permutation(seed Color, taken []Color) []Color {
	if cf.GroupSize == 1 {
		return []Color{seed}
	}
	lo := int(seed) / cf.GroupSize * cf.GroupSize
	hi := lo + cf.GroupSize
	if hi > cf.NumColors {
		hi = cf.NumColors
	}
	members := func(skipTaken bool) []Color {
		var out []Color
		for c := Color(lo); c < Color(hi); c++ {
			if c == seed || (skipTaken && contains(taken, c)) {
				continue
			}
			out = append(out, c)
		}
		return out
	}
	perm := members(true)
	if len(perm) == 0 {
		perm = members(false)
	}
	if len(perm) == 0 {
		return []Color{seed}
	}
	for i := 0; i < maxLookahead && i < len(perm)-1; i++ {
		j := i + intn(cf.src, len(perm)-i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

func contains(colors []Color, c Color) bool {
	for _, have := range colors {
		if have == c {
			return true
		}
	}
	return false
}
