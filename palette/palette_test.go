package palette

import (
	"image"
	"image/color"
	"testing"

	"github.com/scottkirkwood/truchet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpread(t *testing.T) {
	pal, err := Spread(5, 0.8, 0.9, truchet.NewRandom(1))
	require.NoError(t, err)
	require.Len(t, pal, 5)
	seen := map[color.Color]bool{}
	for _, c := range pal {
		assert.False(t, seen[c], "duplicate color %v", c)
		seen[c] = true
		_, _, _, a := c.RGBA()
		assert.Equal(t, uint32(0xffff), a)
	}

	_, err = Spread(0, 1, 1, truchet.NewRandom(1))
	assert.Equal(t, ErrNoColors, err)
}

func TestSpreadDeterministic(t *testing.T) {
	a, err := Spread(4, 1, 1, truchet.NewRandom(9))
	require.NoError(t, err)
	b, err := Spread(4, 1, 1, truchet.NewRandom(9))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	green := color.RGBA{0, 255, 0, 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			switch {
			case x < 6:
				img.Set(x, y, blue)
			case x < 9:
				img.Set(x, y, red)
			default:
				img.Set(x, y, green)
			}
		}
	}
	pal, err := FromImage(img, 2)
	require.NoError(t, err)
	// the two most frequent, ordered by hue
	assert.Equal(t, color.Palette{red, blue}, pal)

	pal, err = FromImage(img, 5)
	require.NoError(t, err)
	assert.Equal(t, color.Palette{red, green, blue}, pal)
}
