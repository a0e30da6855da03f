package tiling

// Options configures one generation pass. The engine trusts these values;
// negative probabilities or sizes are the caller's mistake.
type Options struct {
	Width, Height float64 // canvas size
	CellSize      float64 // cell width
	AspectRatio   float64 // cell height / width, 0 means square
	// Cols and Rows, when non-zero, override the size derived from the canvas.
	Cols, Rows int

	Tiles            []WeightedType
	BlankProbability float64
	FlowProbability  float64 // chance a line keeps its color across a tile boundary
	NumColors        int
	ColorGroupSize   int

	// OnRow is called after each row of placement completes.
	OnRow func(y int)
	// OnColor is called after each port is colored.
	OnColor func(x, y int, p Port, c Color)
}

// DefaultOptions returns an 800x800 quarter-arc Truchet tiling.
func DefaultOptions() Options {
	return Options{
		Width:            800,
		Height:           800,
		CellSize:         40,
		AspectRatio:      1,
		Tiles:            tileSets["arcs"](),
		BlankProbability: 0,
		FlowProbability:  0.85,
		NumColors:        6,
		ColorGroupSize:   3,
	}
}

// GridSize derives the number of columns and rows, at least one of each.
func (o Options) GridSize() (cols, rows int) {
	cols, rows = o.Cols, o.Rows
	aspect := o.AspectRatio
	if aspect <= 0 {
		aspect = 1
	}
	if cols == 0 && o.CellSize > 0 {
		cols = int(o.Width / o.CellSize)
	}
	if rows == 0 && o.CellSize > 0 {
		rows = int(o.Height / (o.CellSize * aspect))
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// CellHeight is the cell height implied by CellSize and AspectRatio.
func (o Options) CellHeight() float64 {
	if o.AspectRatio <= 0 {
		return o.CellSize
	}
	return o.CellSize * o.AspectRatio
}
