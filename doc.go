// Package gridpath finds shortest paths on obstacle grids.
//
// What is gridpath?
//
//	A small, dependency-light toolkit for 4-connected 0/1 grids:
//		• gridgraph/ — the grid adapter: bounds, free cells, neighbours, regions
//		• astar/     — A* with the Manhattan heuristic and a deterministic tie-break
//		• bfs/       — breadth-first search, the exhaustive reference for A*
//		• gridfile/  — scenario files (YAML, JSON with comments, ASCII maps),
//		               text rendering and PNG output
//		• cmd/gridpath — the command line front end
//
// Quick start:
//
//	res, err := astar.FindPathInMatrix(values, gridgraph.Cell{}, gridgraph.Cell{Row: 2, Col: 2})
//	if err != nil {
//		// malformed request: errors.Is(err, astar.ErrInvalidInput)
//	}
//	if !res.Found {
//		// no route, which is a normal outcome
//	}
//
// Every search is a pure function of its inputs: the grid is never mutated
// and concurrent calls on the same grid are safe.
package gridpath
