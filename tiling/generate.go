package tiling

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Generate runs a full pass: blank distribution and placement row by row,
// then color flow over the finished grid.
//
// The only yield point is the end of each placement row: OnRow is called and
// ctx is checked there. A cancelled pass returns ctx.Err() and must be
// restarted from scratch. All randomness comes from src, in this order: per
// cell the blank draw (eligible cells only), then per placement attempt the
// type draw and any draws of the type's NewTile; then the color flow draws.
func Generate(ctx context.Context, opts Options, src Source) (*Grid, error) {
	cols, rows := opts.GridSize()
	g := NewGrid(cols, rows)
	blanks := NewBlankDistribution(opts.BlankProbability)
	placer := NewPlacer(opts.Tiles, src)

	exhausted := 0
	for y := 0; y < rows; y++ {
		blanks.StartRow()
		for x := 0; x < cols; x++ {
			if blanks.IsBlank(x, y, src) {
				g.Set(x, y, blankTile)
				continue
			}
			if !placer.Place(g, x, y) {
				exhausted++
			}
		}
		if opts.OnRow != nil {
			opts.OnRow(y)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	log.WithFields(log.Fields{
		"cols":      cols,
		"rows":      rows,
		"exhausted": exhausted,
	}).Debug("Placement done")

	flow := NewColorFlow(opts.NumColors, opts.ColorGroupSize, opts.FlowProbability, src)
	flow.OnColor = opts.OnColor
	flow.Fill(g)
	return g, nil
}
