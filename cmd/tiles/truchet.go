package main

import (
	"context"
	"fmt"
	"image/color"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scottkirkwood/truchet"
	"github.com/scottkirkwood/truchet/config"
	"github.com/scottkirkwood/truchet/palette"
	"github.com/scottkirkwood/truchet/render"
	"github.com/scottkirkwood/truchet/tiling"
)

var (
	configFile string
	outPrefix  string
	format     string
	overrides  config.File
)

func init() {
	truchetCmd := &cobra.Command{
		Use:   "truchet",
		Short: "Draw a Truchet tiling",
		RunE:  runTruchet,
	}
	d := config.Default()
	fl := truchetCmd.Flags()
	fl.StringVarP(&configFile, "config", "c", "", "YAML run description")
	fl.StringVarP(&outPrefix, "output", "o", "samples/truchet-", "Output filename prefix")
	fl.StringVarP(&format, "format", "f", "png", "png, svg or pdf")
	fl.StringVarP(&overrides.TileSet, "tileset", "t", d.TileSet, fmt.Sprintf("Built-in tile set %v", tiling.TileSetNames()))
	fl.Float64Var(&overrides.Blank, "blank", d.Blank, "Probability of an empty cell")
	fl.Float64Var(&overrides.Flow, "flow", d.Flow, "Probability a line keeps its color into the next tile")
	fl.IntVar(&overrides.Colors, "colors", d.Colors, "Palette size")
	fl.IntVar(&overrides.Group, "group", d.Group, "Color group size")
	fl.Float64Var(&overrides.Cell, "cell", d.Cell, "Cell width")
	fl.StringVar(&overrides.Image, "palette-image", "", "Take the palette from this image")

	rootCmd.AddCommand(truchetCmd)
}

func runTruchet(cmd *cobra.Command, args []string) error {
	f, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rnd, err := newRandom(f.Seed)
	if err != nil {
		return err
	}
	_, err = drawTruchet(context.Background(), f, rnd, outPrefix, "."+format)
	return err
}

// loadConfig reads --config and applies the flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.File, error) {
	f := config.Default()
	if configFile != "" {
		var err error
		if f, err = config.Load(configFile); err != nil {
			return f, err
		}
	}
	fl := cmd.Flags()
	if fl.Changed("tileset") {
		f.TileSet, f.Tiles = overrides.TileSet, nil
	}
	if fl.Changed("blank") {
		f.Blank = overrides.Blank
	}
	if fl.Changed("flow") {
		f.Flow = overrides.Flow
	}
	if fl.Changed("colors") {
		f.Colors = overrides.Colors
	}
	if fl.Changed("group") {
		f.Group = overrides.Group
	}
	if fl.Changed("cell") {
		f.Cell = overrides.Cell
	}
	if fl.Changed("palette-image") {
		f.Image = overrides.Image
	}
	return f, f.Validate()
}

// newRandom prefers --seed over the seed in the config file.
func newRandom(fileSeed string) (*truchet.Random, error) {
	seed := seedFlag
	if seed == "" {
		seed = fileSeed
	}
	rnd, err := truchet.Init(seed)
	if err != nil {
		return nil, fmt.Errorf("unable to set the seed: %w", err)
	}
	log.Infof("Seed %s", rnd.Hex())
	return rnd, nil
}

// drawTruchet generates, renders and saves one tiling, returning the file name.
func drawTruchet(ctx context.Context, f config.File, rnd *truchet.Random, prefix, ext string) (string, error) {
	opts, err := f.Options()
	if err != nil {
		return "", err
	}
	pal, err := makePalette(f, rnd)
	if err != nil {
		return "", err
	}
	bg, err := f.BackgroundColor()
	if err != nil {
		return "", err
	}
	opts.OnRow = func(y int) {
		log.Debugf("Placed row %d", y)
	}

	g, err := tiling.Generate(ctx, opts, rnd)
	if err != nil {
		return "", err
	}
	cv := truchet.NewContext(opts.Width, opts.Height)
	strokes := render.Grid(cv, g, pal, render.Options{
		CellWidth:   opts.CellSize,
		CellHeight:  opts.CellHeight(),
		Background:  bg,
		StrokeWidth: f.Stroke,
	})
	log.WithFields(log.Fields{
		"cols":    g.Cols,
		"rows":    g.Rows,
		"strokes": strokes,
	}).Info("Rendered")
	return rnd.SafeWrite(cv, prefix, ext)
}

func makePalette(f config.File, rnd *truchet.Random) (color.Palette, error) {
	if f.Image == "" {
		return palette.Spread(f.Colors, f.Saturation, f.Value, rnd)
	}
	pal, err := palette.LoadImage(f.Image, f.Colors)
	if err != nil {
		return nil, fmt.Errorf("unable get palette: %w", err)
	}
	if len(pal) < f.Colors {
		log.Warnf("%s only has %d colors, wanted %d", f.Image, len(pal), f.Colors)
	}
	return pal, nil
}
