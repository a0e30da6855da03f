package tiling

import (
	"math"

	"github.com/scottkirkwood/truchet"
)

const (
	// minBlankProbability and below means no blanks at all.
	minBlankProbability = 1e-6
	// maxSpacing is the widest gap between eligible cells; rarer blanks are
	// tested on every cell instead.
	maxSpacing = 32
)

// BlankDistribution decides which cells of a row are left empty so that
// about a fraction P of them are, without tight periodic patterns and
// without runs longer than MaxRun.
//
// Only one cell in every Spacing is eligible, staggered by Shift from row to
// row. Blanks that could not be emitted, because of the run cap or because
// P*Spacing exceeds 1, accumulate in a diffusion counter that is spent on a
// later cell once it reaches 1.
type BlankDistribution struct {
	P       float64
	Spacing int
	Shift   int
	MaxRun  int

	eligibleP float64
	excess    float64
	run       int
	diffusion float64
}

func NewBlankDistribution(p float64) *BlankDistribution {
	b := &BlankDistribution{P: p, Spacing: 1, Shift: 0}
	if p < minBlankProbability || p >= 1 {
		return b
	}
	b.Spacing = truchet.Round(1 / p)
	if b.Spacing > maxSpacing {
		b.Spacing = 1
	}
	if b.Spacing > 1 {
		b.Shift = bestShift(b.Spacing)
	}
	b.eligibleP = p * float64(b.Spacing)
	if b.eligibleP > 1 {
		b.excess = b.eligibleP - 1
		b.eligibleP = 1
	}
	b.MaxRun = truchet.Round(1/(1-p)+0.49) - 1
	if b.MaxRun < 1 {
		b.MaxRun = 1
	}
	return b
}

// bestShift picks the shift in 2..spacing/2 maximizing spacing mod shift,
// the smallest on ties. Spacings too small to search use 1.
func bestShift(spacing int) int {
	shift, best := 1, -1
	for s := 2; s <= spacing/2; s++ {
		if m := spacing % s; m > best {
			shift, best = s, m
		}
	}
	return shift
}

// StartRow forgets the run and diffusion state of the previous row.
func (b *BlankDistribution) StartRow() {
	b.run = 0
	b.diffusion = 0
}

// Eligible reports whether cell x,y may be drawn as a blank.
func (b *BlankDistribution) Eligible(x, y int) bool {
	return (x+y*b.Shift+1)%b.Spacing == 0
}

// IsBlank decides cell x,y. Cells must be visited left to right.
// It draws from src only on eligible cells.
func (b *BlankDistribution) IsBlank(x, y int, src Source) bool {
	if b.P < minBlankProbability {
		return false
	}
	if b.P >= 1 {
		return true
	}
	want := false
	if b.Eligible(x, y) {
		want = src.Next() < b.eligibleP
		b.diffusion += b.excess
	}
	if !want && b.diffusion >= 1 && b.run < b.MaxRun {
		b.diffusion--
		want = true
	}
	if want && b.run >= b.MaxRun {
		b.diffusion++
		want = false
	}
	if want {
		b.run++
	} else {
		b.run = 0
	}
	return want
}

// Diffusion is the blank probability still owed to the current row.
func (b *BlankDistribution) Diffusion() float64 {
	return math.Max(b.diffusion, 0)
}
