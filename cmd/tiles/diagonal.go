package main

import (
	"github.com/spf13/cobra"

	"github.com/scottkirkwood/truchet"
	"github.com/scottkirkwood/truchet/diagonal"
)

var diagOpts = diagonal.DefaultOptions()

func init() {
	diagCmd := &cobra.Command{
		Use:   "diagonal",
		Short: "Draw a 10 PRINT diagonal maze",
		RunE:  runDiagonal,
	}
	fl := diagCmd.Flags()
	fl.IntVar(&diagOpts.Cols, "cols", diagOpts.Cols, "Number of columns")
	fl.IntVar(&diagOpts.Rows, "rows", diagOpts.Rows, "Number of rows")
	fl.Float64Var(&diagOpts.Cell, "cell", diagOpts.Cell, "Cell size in pixels")
	fl.Float64Var(&diagOpts.LineWidth, "width", diagOpts.LineWidth, "Line width in pixels")
	fl.Float64Var(&diagOpts.BlankProbability, "blank", diagOpts.BlankProbability, "Probability of an empty cell")
	fl.Float64Var(&diagOpts.ForwardProbability, "forward", diagOpts.ForwardProbability, "Probability of / over \\")

	rootCmd.AddCommand(diagCmd)
}

func runDiagonal(cmd *cobra.Command, args []string) error {
	rnd, err := newRandom("")
	if err != nil {
		return err
	}
	r := truchet.NewRaster(
		int(float64(diagOpts.Cols)*diagOpts.Cell),
		int(float64(diagOpts.Rows)*diagOpts.Cell))
	diagonal.Draw(r.Context, diagOpts, rnd)
	_, err = rnd.SafeWrite(r, "samples/diagonal-", ".png")
	return err
}
