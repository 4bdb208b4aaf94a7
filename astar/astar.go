package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// FindPath runs A* on g from start to goal.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrOptionViolation).
//  3. start and goal must be in bounds (ErrStartOutOfBounds, ErrGoalOutOfBounds).
//  4. start and goal must be free (ErrStartBlocked, ErrGoalBlocked).
//
// An unreachable goal yields Result{Found: false} and a nil error.
// The grid is only read, never modified.
func FindPath(g Grid, start, goal gridgraph.Cell, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if !g.InBounds(goal) {
		return Result{}, fmt.Errorf("%w: %v", ErrGoalOutOfBounds, goal)
	}
	if !g.IsFree(start) {
		return Result{}, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}
	if !g.IsFree(goal) {
		return Result{}, fmt.Errorf("%w: %v", ErrGoalBlocked, goal)
	}

	if start == goal {
		cfg.OnExpand(start, 0)
		return Result{Path: []gridgraph.Cell{start}, Found: true, Expanded: 1, Pushed: 1}, nil
	}

	// Tables grow with the explored area, not with the grid size.
	r := &runner{
		grid:    g,
		options: cfg,
		goal:    goal,
		gScore:  make(map[gridgraph.Cell]int),
		parent:  make(map[gridgraph.Cell]gridgraph.Cell),
		pq:      make(nodePQ, 0, initialFrontier),
	}
	r.init(start)

	return r.process(start)
}

// FindPathInMatrix builds a grid from values (0 free, ≥1 obstacle) and runs
// FindPath on it. Empty or ragged matrices are reported as ErrInvalidInput.
func FindPathInMatrix(values [][]int, start, goal gridgraph.Cell, opts ...Option) (Result, error) {
	gg, err := gridgraph.From2D(values)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return FindPath(gg, start, goal, opts...)
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	grid    Grid                              // read-only within the search
	options Options                           // hooks and limits
	goal    gridgraph.Cell                    // target cell
	gScore  map[gridgraph.Cell]int            // best known cost from start
	parent  map[gridgraph.Cell]gridgraph.Cell // cell → cell it was most cheaply reached from
	pq      nodePQ                            // frontier with lazy decrease-key
	seq     int                               // insertion counter for FIFO tie-breaking
	res     Result                            // counters accumulated while searching
}

// init records g(start)=0 and seeds the frontier.
func (r *runner) init(start gridgraph.Cell) {
	heap.Init(&r.pq)
	r.gScore[start] = 0
	r.push(start, 0)
}

// push inserts c with cost g and priority g + h(c).
func (r *runner) push(c gridgraph.Cell, g int) {
	heap.Push(&r.pq, &nodeItem{
		cell: c,
		g:    g,
		f:    g + c.Manhattan(r.goal),
		seq:  r.seq,
	})
	r.seq++
	r.res.Pushed++
}

// process is the main loop: pop the best entry, stop at the goal, skip stale
// entries, relax the rest.
func (r *runner) process(start gridgraph.Cell) (Result, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		if item.cell == r.goal {
			r.res.Found = true
			r.res.Cost = r.gScore[r.goal]
			r.res.Path = reconstructPath(r.parent, start, r.goal)
			return r.res, nil
		}

		// Stale entry: a cheaper g was recorded after this one was pushed.
		if item.g > r.gScore[item.cell] {
			continue
		}

		if r.options.MaxExpansions > 0 && r.res.Expanded >= r.options.MaxExpansions {
			return Result{Expanded: r.res.Expanded, Pushed: r.res.Pushed},
				fmt.Errorf("%w: %d cells", ErrExpansionLimit, r.options.MaxExpansions)
		}
		r.res.Expanded++
		r.options.OnExpand(item.cell, item.g)

		r.relax(item.cell, item.g)
	}

	return Result{Expanded: r.res.Expanded, Pushed: r.res.Pushed}, nil
}

// relax tries to improve every free orthogonal neighbour of u, whose g-score is gu.
func (r *runner) relax(u gridgraph.Cell, gu int) {
	tentative := gu + 1
	for _, d := range gridgraph.Offsets {
		v := gridgraph.Cell{Row: u.Row + d.Row, Col: u.Col + d.Col}
		if !r.grid.InBounds(v) || !r.grid.IsFree(v) {
			continue
		}
		if best, seen := r.gScore[v]; seen && tentative >= best {
			continue
		}
		r.gScore[v] = tentative
		r.parent[v] = u
		r.push(v, tentative)
	}
}

// reconstructPath walks parent links back from goal to start and returns the
// cells in start→goal order. Parent links form a tree rooted at start because
// a cell is only re-parented on a strict cost improvement.
func reconstructPath(parent map[gridgraph.Cell]gridgraph.Cell, start, goal gridgraph.Cell) []gridgraph.Cell {
	path := []gridgraph.Cell{goal}
	for cur := goal; cur != start; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
