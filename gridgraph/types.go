// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/gridpath.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// Cell is a zero-indexed (row, column) coordinate. Row grows downward.
// Cell is comparable and is used directly as a map key.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(r,c)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns |r1-r2| + |c1-c2|, the number of orthogonal unit
// moves between c and o on an empty grid.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// Adjacent reports whether c and o differ by exactly one orthogonal step.
func (c Cell) Adjacent(o Cell) bool {
	return c.Manhattan(o) == 1
}

// Offsets lists the orthogonal moves in the order neighbours are produced:
// up, down, left, right.
var Offsets = [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// ObstacleThreshold specifies the minimum cell value considered an obstacle.
	ObstacleThreshold int
}

// DefaultGridOptions returns a GridOptions with default settings:
// ObstacleThreshold=1 (0 is free, values ≥1 are obstacles).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		ObstacleThreshold: 1,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built:
// fields are unexported and the cell values are a private copy of the input.
type GridGraph struct {
	rows, cols int
	cells      [][]int // cells[row][col] holds the original input value
	threshold  int     // values >= threshold are obstacles
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
