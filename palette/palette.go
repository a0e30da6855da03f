// Package palette builds the color palettes that tiling color indexes
// refer to.
package palette

import (
	"errors"
	"image"
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/scottkirkwood/truchet"
)

// ErrNoColors is returned when a palette of zero colors is requested.
var ErrNoColors = errors.New("palette: need at least one color")

// Source is the random stream used to jitter palettes.
type Source interface {
	Next() float64
}

// Spread returns n colors evenly spaced in hue starting at a random hue.
// Consecutive colors are neighbors on the color wheel, so a color group of
// adjacent indexes is a family of related hues.
func Spread(n int, saturation, value float64, src Source) (color.Palette, error) {
	if n < 1 {
		return nil, ErrNoColors
	}
	start := src.Next() * 360
	step := 60.0 / float64(n)
	if n > 1 {
		step = 300.0 / float64(n-1)
	}
	sat := truchet.Clamp(saturation, 0, 1)
	val := truchet.Clamp(value, 0, 1)
	pal := make(color.Palette, n)
	for i := range pal {
		hue := start + float64(i)*step
		for hue >= 360 {
			hue -= 360
		}
		c := colorful.Hsv(hue, sat, val)
		r, g, b := c.RGB255()
		pal[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return pal, nil
}

// FromImage takes the n most frequent colors of an image, ordered by hue so
// that color groups stay coherent.
func FromImage(img image.Image, n int) (color.Palette, error) {
	if n < 1 {
		return nil, ErrNoColors
	}
	bounds := img.Bounds()
	counts := make(map[color.RGBA]int, 512)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			counts[color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}]++
		}
	}
	type colCount struct {
		col   color.RGBA
		count int
	}
	toSort := make([]colCount, 0, len(counts))
	for col, count := range counts {
		toSort = append(toSort, colCount{col, count})
	}
	sort.Slice(toSort, func(i, j int) bool {
		if toSort[i].count != toSort[j].count {
			return toSort[i].count > toSort[j].count
		}
		return hex(toSort[i].col) < hex(toSort[j].col)
	})
	if len(toSort) > n {
		toSort = toSort[:n]
	}
	sort.SliceStable(toSort, func(i, j int) bool {
		return hue(toSort[i].col) < hue(toSort[j].col)
	})

	pal := make(color.Palette, len(toSort))
	for i, cc := range toSort {
		pal[i] = cc.col
	}
	return pal, nil
}

// LoadImage reads an image file and takes its palette.
func LoadImage(fname string, n int) (color.Palette, error) {
	img, err := truchet.DecodeImage(fname)
	if err != nil {
		return nil, err
	}
	return FromImage(img, n)
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func hue(c color.RGBA) float64 {
	h, _, _ := toColorful(c).Hsv()
	return h
}

func hex(c color.RGBA) string {
	return toColorful(c).Hex()
}
