package gridfile

import (
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Map symbols used by Render.
const (
	SymbolFree     = '.'
	SymbolObstacle = '#'
	SymbolPath     = '*'
	SymbolStart    = 'S'
	SymbolGoal     = 'G'
)

// Render draws values as an ASCII map, one line per row. Cells on path are
// drawn with SymbolPath; start and goal, when non-nil, override any other
// symbol. Values ≥ 1 are obstacles.
func Render(values [][]int, start, goal *gridgraph.Cell, path []gridgraph.Cell) string {
	canvas := make([][]byte, len(values))
	for r, row := range values {
		canvas[r] = make([]byte, len(row))
		for c, v := range row {
			canvas[r][c] = SymbolFree
			if v >= 1 {
				canvas[r][c] = SymbolObstacle
			}
		}
	}
	mark := func(cell gridgraph.Cell, sym byte) {
		if cell.Row >= 0 && cell.Row < len(canvas) && cell.Col >= 0 && cell.Col < len(canvas[cell.Row]) {
			canvas[cell.Row][cell.Col] = sym
		}
	}
	for _, cell := range path {
		mark(cell, SymbolPath)
	}
	if start != nil {
		mark(*start, SymbolStart)
	}
	if goal != nil {
		mark(*goal, SymbolGoal)
	}

	var b strings.Builder
	for _, row := range canvas {
		b.Write(row)
		b.WriteByte('\n')
	}

	return b.String()
}

// RenderScenario draws s with its endpoints and an optional path.
func RenderScenario(s *Scenario, path []gridgraph.Cell) string {
	return Render(s.Grid, s.Start, s.Goal, path)
}
