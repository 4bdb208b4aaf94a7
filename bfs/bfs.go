package bfs

import (
	"github.com/katalvlaran/gridpath/gridgraph"
)

// walker encapsulates mutable BFS state.
type walker struct {
	grid  Grid
	opts  Options
	queue []gridgraph.Cell
	res   *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGridNil, ErrOptionViolation or ErrStartInvalid for invalid input,
// or any error returned by the OnVisit hook.
func BFS(g Grid, start gridgraph.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) || !g.IsFree(start) {
		return nil, ErrStartInvalid
	}

	rows, cols := g.Dims()
	n := rows * cols
	w := &walker{
		grid:  g,
		opts:  o,
		queue: make([]gridgraph.Cell, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]gridgraph.Cell, 0, n),
			Depth:  make(map[gridgraph.Cell]int, n),
			Parent: make(map[gridgraph.Cell]gridgraph.Cell, n),
		},
	}

	w.res.Depth[start] = 0
	w.queue = append(w.queue, start)

	return w.res, w.loop()
}

// ShortestDistance returns the minimum number of moves from start to goal,
// or ErrNoPath if goal is unreachable.
func ShortestDistance(g Grid, start, goal gridgraph.Cell) (int, error) {
	res, err := BFS(g, start)
	if err != nil {
		return 0, err
	}
	d, ok := res.Depth[goal]
	if !ok {
		return 0, ErrNoPath
	}

	return d, nil
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		depth := w.res.Depth[cur]

		w.res.Order = append(w.res.Order, cur)
		if err := w.opts.OnVisit(cur, depth); err != nil {
			return err
		}

		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			continue
		}
		for _, d := range gridgraph.Offsets {
			nbr := gridgraph.Cell{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			if !w.grid.IsFree(nbr) {
				continue
			}
			// first time seen?
			if _, seen := w.res.Depth[nbr]; seen {
				continue
			}
			w.res.Depth[nbr] = depth + 1
			w.res.Parent[nbr] = cur
			w.queue = append(w.queue, nbr)
		}
	}

	return nil
}
