package bfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func mustGrid(t *testing.T, values [][]int) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.From2D(values)
	require.NoError(t, err)

	return gg
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil grid
	if _, err := bfs.BFS(nil, gridgraph.Cell{}); !errors.Is(err, bfs.ErrGridNil) {
		t.Errorf("nil grid: want ErrGridNil, got %v", err)
	}
	gg := mustGrid(t, [][]int{{0, 1}})
	// start out of bounds
	if _, err := bfs.BFS(gg, gridgraph.Cell{Row: 3, Col: 0}); !errors.Is(err, bfs.ErrStartInvalid) {
		t.Errorf("out of bounds: want ErrStartInvalid, got %v", err)
	}
	// start blocked
	if _, err := bfs.BFS(gg, gridgraph.Cell{Row: 0, Col: 1}); !errors.Is(err, bfs.ErrStartInvalid) {
		t.Errorf("blocked: want ErrStartInvalid, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(gg, gridgraph.Cell{}, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleCell covers the trivial one-cell grid.
func TestBFS_SingleCell(t *testing.T) {
	res, err := bfs.BFS(mustGrid(t, [][]int{{0}}), gridgraph.Cell{})
	require.NoError(t, err)
	if want := []gridgraph.Cell{{Row: 0, Col: 0}}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	path, err := res.PathTo(gridgraph.Cell{})
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{{Row: 0, Col: 0}}, path)
}

// TestBFS_DepthsAroundWall checks distances on a grid with a partial wall.
//
//	. . .
//	# # .
//	. . .
func TestBFS_DepthsAroundWall(t *testing.T) {
	gg := mustGrid(t, [][]int{
		{0, 0, 0},
		{1, 1, 0},
		{0, 0, 0},
	})
	res, err := bfs.BFS(gg, gridgraph.Cell{Row: 0, Col: 0})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Depth[gridgraph.Cell{Row: 0, Col: 2}])
	assert.Equal(t, 4, res.Depth[gridgraph.Cell{Row: 2, Col: 2}])
	assert.Equal(t, 6, res.Depth[gridgraph.Cell{Row: 2, Col: 0}])
	_, blocked := res.Depth[gridgraph.Cell{Row: 1, Col: 0}]
	assert.False(t, blocked)
	assert.Len(t, res.Order, 7)

	path, err := res.PathTo(gridgraph.Cell{Row: 2, Col: 0})
	require.NoError(t, err)
	want := []gridgraph.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 0}}
	assert.Equal(t, want, path)
}

// TestBFS_Unreachable reports ErrNoPath for cells behind a wall.
func TestBFS_Unreachable(t *testing.T) {
	gg := mustGrid(t, [][]int{
		{0, 1, 0},
		{0, 1, 0},
	})
	res, err := bfs.BFS(gg, gridgraph.Cell{})
	require.NoError(t, err)
	_, err = res.PathTo(gridgraph.Cell{Row: 0, Col: 2})
	assert.ErrorIs(t, err, bfs.ErrNoPath)

	_, err = bfs.ShortestDistance(gg, gridgraph.Cell{}, gridgraph.Cell{Row: 1, Col: 2})
	assert.ErrorIs(t, err, bfs.ErrNoPath)

	d, err := bfs.ShortestDistance(gg, gridgraph.Cell{}, gridgraph.Cell{Row: 1, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, d)
}

// TestBFS_MaxDepth limits exploration on an open row.
func TestBFS_MaxDepth(t *testing.T) {
	gg := mustGrid(t, [][]int{{0, 0, 0, 0, 0}})
	res, err := bfs.BFS(gg, gridgraph.Cell{}, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, res.Order)
}

// TestBFS_OnVisitAbort propagates hook errors.
func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	gg := mustGrid(t, [][]int{{0, 0, 0}})
	visited := 0
	_, err := bfs.BFS(gg, gridgraph.Cell{}, bfs.WithOnVisit(func(c gridgraph.Cell, depth int) error {
		visited++
		if depth == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, visited)
}
