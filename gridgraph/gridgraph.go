package gridgraph

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(R×C) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]int, cols)
		copy(cells[r], values[r])
	}

	return &GridGraph{
		rows:      rows,
		cols:      cols,
		cells:     cells,
		threshold: opts.ObstacleThreshold,
	}, nil
}

// From2D builds a GridGraph with DefaultGridOptions.
func From2D(values [][]int) (*GridGraph, error) {
	return NewGridGraph(values, DefaultGridOptions())
}

// Dims returns the number of rows and columns.
func (gg *GridGraph) Dims() (rows, cols int) {
	return gg.rows, gg.cols
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < gg.rows && c.Col >= 0 && c.Col < gg.cols
}

// IsFree reports whether c is in bounds and not an obstacle.
// Complexity: O(1).
func (gg *GridGraph) IsFree(c Cell) bool {
	return gg.InBounds(c) && gg.cells[c.Row][c.Col] < gg.threshold
}

// Value returns the original value stored at c. c must be in bounds.
func (gg *GridGraph) Value(c Cell) int {
	return gg.cells[c.Row][c.Col]
}

// ObstacleThreshold returns the minimum value treated as an obstacle.
func (gg *GridGraph) ObstacleThreshold() int {
	return gg.threshold
}

// Values returns a copy of the cell values; changing it does not affect gg.
// Complexity: O(R×C).
func (gg *GridGraph) Values() [][]int {
	out := make([][]int, gg.rows)
	for r := range out {
		out[r] = append([]int(nil), gg.cells[r]...)
	}

	return out
}

// Neighbors returns the free orthogonal neighbours of c in Offsets order.
// Complexity: O(1).
func (gg *GridGraph) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(Offsets))
	for _, d := range Offsets {
		n := Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if gg.IsFree(n) {
			out = append(out, n)
		}
	}

	return out
}

// index maps c to a row‑major index: Row*Cols + Col.
// Complexity: O(1).
func (gg *GridGraph) index(c Cell) int {
	return c.Row*gg.cols + c.Col
}
