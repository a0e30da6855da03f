package truchet

import (
	"errors"

	"github.com/fogleman/gg"
)

// ErrRasterOnly is returned when a vector format is requested from a Raster.
var ErrRasterOnly = errors.New("raster context only writes png")

// Raster adapts a gg context so it can be saved with SafeWrite.
type Raster struct {
	*gg.Context
}

func NewRaster(width, height int) *Raster {
	return &Raster{gg.NewContext(width, height)}
}

// WritePNG writes to a PNG file
func (r *Raster) WritePNG(fname string) error {
	return r.SavePNG(fname)
}

func (r *Raster) WriteSVG(string) error {
	return ErrRasterOnly
}

func (r *Raster) WritePDF(string) error {
	return ErrRasterOnly
}
