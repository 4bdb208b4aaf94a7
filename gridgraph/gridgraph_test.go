package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"NilGrid", nil, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 0}, {0}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_DeepCopy ensures later caller mutations do not leak in.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{0, 0}, {0, 0}}
	gg, err := gridgraph.From2D(grid)
	require.NoError(t, err)

	grid[0][1] = 1
	assert.True(t, gg.IsFree(gridgraph.Cell{Row: 0, Col: 1}))
	assert.Equal(t, 0, gg.Value(gridgraph.Cell{Row: 0, Col: 1}))
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	gg, err := gridgraph.From2D(grid)
	if err != nil {
		t.Fatalf("From2D error: %v", err)
	}
	rows, cols := gg.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)

	valid := []gridgraph.Cell{{0, 0}, {1, 2}, {1, 1}}
	for _, c := range valid {
		if !gg.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	invalid := []gridgraph.Cell{{-1, 0}, {0, 3}, {2, 1}, {1, -1}}
	for _, c := range invalid {
		if gg.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
	}
}

// TestIsFree covers obstacles, free cells, out-of-bounds cells and a custom threshold.
func TestIsFree(t *testing.T) {
	grid := [][]int{
		{0, 1, 2},
		{3, 0, 0},
	}
	gg, err := gridgraph.From2D(grid)
	require.NoError(t, err)

	assert.True(t, gg.IsFree(gridgraph.Cell{Row: 0, Col: 0}))
	assert.False(t, gg.IsFree(gridgraph.Cell{Row: 0, Col: 1}))
	assert.False(t, gg.IsFree(gridgraph.Cell{Row: 0, Col: 2}))
	assert.False(t, gg.IsFree(gridgraph.Cell{Row: 5, Col: 5}))

	lenient, err := gridgraph.NewGridGraph(grid, gridgraph.GridOptions{ObstacleThreshold: 3})
	require.NoError(t, err)
	assert.True(t, lenient.IsFree(gridgraph.Cell{Row: 0, Col: 2}))
	assert.False(t, lenient.IsFree(gridgraph.Cell{Row: 1, Col: 0}))
}

//----------------------------------------------------------------------------//
// Neighbors and Cell helpers
//----------------------------------------------------------------------------//

// TestNeighbors_Order verifies neighbours come out as up, down, left, right.
func TestNeighbors_Order(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)

	got := gg.Neighbors(gridgraph.Cell{Row: 1, Col: 1})
	want := []gridgraph.Cell{{0, 1}, {2, 1}, {1, 0}, {1, 2}}
	assert.Equal(t, want, got)
}

// TestNeighbors_SkipsObstaclesAndEdges checks corner and blocked cases.
func TestNeighbors_SkipsObstaclesAndEdges(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{0, 1},
		{0, 0},
	})
	require.NoError(t, err)

	assert.Equal(t, []gridgraph.Cell{{1, 0}}, gg.Neighbors(gridgraph.Cell{Row: 0, Col: 0}))
	assert.Equal(t, []gridgraph.Cell{{0, 0}, {1, 1}}, gg.Neighbors(gridgraph.Cell{Row: 1, Col: 0}))
}

func TestCell_ManhattanAndAdjacent(t *testing.T) {
	a := gridgraph.Cell{Row: 0, Col: 0}
	b := gridgraph.Cell{Row: 2, Col: 3}
	assert.Equal(t, 5, a.Manhattan(b))
	assert.Equal(t, 5, b.Manhattan(a))
	assert.True(t, a.Adjacent(gridgraph.Cell{Row: 0, Col: 1}))
	assert.False(t, a.Adjacent(gridgraph.Cell{Row: 1, Col: 1}))
	assert.False(t, a.Adjacent(a))
	assert.Equal(t, "(2,3)", b.String())
}

// TestGridGraph_Isolation checks that neither the input matrix nor the
// slice returned by Values can change a built grid.
func TestGridGraph_Isolation(t *testing.T) {
	input := [][]int{{0, 0}, {2, 0}}
	gg, err := gridgraph.NewGridGraph(input, gridgraph.GridOptions{ObstacleThreshold: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, gg.ObstacleThreshold())

	input[0][0] = 5
	assert.True(t, gg.IsFree(gridgraph.Cell{Row: 0, Col: 0}))

	values := gg.Values()
	assert.Equal(t, [][]int{{0, 0}, {2, 0}}, values)
	values[0][1] = 9
	values[1] = nil
	assert.True(t, gg.IsFree(gridgraph.Cell{Row: 0, Col: 1}))
	assert.Equal(t, 2, gg.Value(gridgraph.Cell{Row: 1, Col: 0}))
	assert.False(t, gg.IsFree(gridgraph.Cell{Row: 1, Col: 0}))

	rows, cols := gg.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
}
