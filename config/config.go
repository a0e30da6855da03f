// Package config reads the YAML description of a tiling run.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/ioutil"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/scottkirkwood/truchet/tiling"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoTiles indicates neither a tile set nor a tile table was given.
	ErrNoTiles = errors.New("config: no tileset or tiles")
	// ErrOutOfRange indicates a probability or size outside its domain.
	ErrOutOfRange = errors.New("config: value out of range")
)

// Tile declares one entry of the tile table.
type Tile struct {
	Name      string      `yaml:"name"`
	Frequency float64     `yaml:"frequency"`
	Ports     map[int]int `yaml:"ports"` // port -> line group
	Free      bool        `yaml:"free"`
	Loose     []int       `yaml:"unconstrained"`
	Min       int         `yaml:"min"`
	Max       int         `yaml:"max"`
	Special   bool        `yaml:"special"`
}

// File is a whole run: canvas, grid, probabilities, palette and tiles.
type File struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Cell       float64 `yaml:"cell"`
	Aspect     float64 `yaml:"aspect"`
	Seed       string  `yaml:"seed"`
	Blank      float64 `yaml:"blank"`
	Flow       float64 `yaml:"flow"`
	Colors     int     `yaml:"colors"`
	Group      int     `yaml:"group"`
	Saturation float64 `yaml:"saturation"`
	Value      float64 `yaml:"value"`
	Image      string  `yaml:"paletteImage"`
	Background string  `yaml:"background"`
	Stroke     float64 `yaml:"stroke"`
	TileSet    string  `yaml:"tileset"`
	Tiles      []Tile  `yaml:"tiles"`
}

// Default mirrors tiling.DefaultOptions.
func Default() File {
	o := tiling.DefaultOptions()
	return File{
		Width:      o.Width,
		Height:     o.Height,
		Cell:       o.CellSize,
		Aspect:     o.AspectRatio,
		Blank:      o.BlankProbability,
		Flow:       o.FlowProbability,
		Colors:     o.NumColors,
		Group:      o.ColorGroupSize,
		Saturation: 0.7,
		Value:      0.9,
		Background: "#f5f5f5",
		Stroke:     4,
		TileSet:    "arcs",
	}
}

// Load reads path on top of the defaults.
func Load(path string) (File, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML on top of the defaults and validates it.
func Parse(data []byte) (File, error) {
	f := Default()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, err
	}
	if len(f.Tiles) > 0 {
		f.TileSet = ""
	}
	return f, f.Validate()
}

// Validate catches what the engine would silently trust.
func (f File) Validate() error {
	switch {
	case f.Width <= 0 || f.Height <= 0 || f.Cell <= 0:
		return fmt.Errorf("%w: width, height and cell must be positive", ErrOutOfRange)
	case f.Aspect < 0:
		return fmt.Errorf("%w: aspect %v", ErrOutOfRange, f.Aspect)
	case f.Blank < 0 || f.Blank > 1:
		return fmt.Errorf("%w: blank %v", ErrOutOfRange, f.Blank)
	case f.Flow < 0 || f.Flow > 1:
		return fmt.Errorf("%w: flow %v", ErrOutOfRange, f.Flow)
	case f.Colors < 1:
		return fmt.Errorf("%w: colors %d", ErrOutOfRange, f.Colors)
	case f.Group < 0:
		return fmt.Errorf("%w: group %d", ErrOutOfRange, f.Group)
	case f.TileSet == "" && len(f.Tiles) == 0:
		return ErrNoTiles
	}
	for _, t := range f.Tiles {
		if t.Frequency < 0 {
			return fmt.Errorf("%w: tile %q frequency %v", ErrOutOfRange, t.Name, t.Frequency)
		}
	}
	return nil
}

// Options converts the file into engine options.
func (f File) Options() (tiling.Options, error) {
	tiles, err := f.tiles()
	if err != nil {
		return tiling.Options{}, err
	}
	return tiling.Options{
		Width:            f.Width,
		Height:           f.Height,
		CellSize:         f.Cell,
		AspectRatio:      f.Aspect,
		Tiles:            tiles,
		BlankProbability: f.Blank,
		FlowProbability:  f.Flow,
		NumColors:        f.Colors,
		ColorGroupSize:   f.Group,
	}, nil
}

func (f File) tiles() ([]tiling.WeightedType, error) {
	if f.TileSet != "" {
		return tiling.TileSet(f.TileSet)
	}
	table := make([]tiling.WeightedType, 0, len(f.Tiles))
	for _, t := range f.Tiles {
		d := tiling.Design{
			Name:                    t.Name,
			Groups:                  make(map[tiling.Port]int, len(t.Ports)),
			MinConnections:          t.Min,
			MaxConnections:          t.Max,
			CheckSpecialConstraints: t.Special,
		}
		for n, group := range t.Ports {
			p, err := tiling.ParsePort(n)
			if err != nil {
				return nil, fmt.Errorf("tile %q: %w", t.Name, err)
			}
			d.Groups[p] = group
		}
		for _, n := range t.Loose {
			p, err := tiling.ParsePort(n)
			if err != nil {
				return nil, fmt.Errorf("tile %q: %w", t.Name, err)
			}
			d.Unconstrained = d.Unconstrained.With(p)
		}
		var tt tiling.TileType
		if t.Free {
			tt = tiling.NewFree(d)
		} else {
			tt = tiling.NewFixed(d)
		}
		table = append(table, tiling.WeightedType{Type: tt, Frequency: t.Frequency})
	}
	return table, nil
}

// BackgroundColor parses Background; an empty string means none.
func (f File) BackgroundColor() (color.Color, error) {
	if f.Background == "" {
		return nil, nil
	}
	c, err := colorful.Hex(f.Background)
	if err != nil {
		return nil, fmt.Errorf("background %q: %w", f.Background, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
