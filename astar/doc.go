// Package astar computes shortest paths between two cells of a 4-connected,
// unit-cost grid with the A* search algorithm.
//
// Overview:
//
//   - A* expands cells in order of f = g + h, where g is the exact cost from the
//     start and h is the Manhattan distance to the goal. Manhattan distance is
//     admissible and consistent on 4-connected unit-cost grids, so the first time
//     the goal is popped its path is optimal.
//   - The frontier is a binary min-heap with “lazy decrease-key”: an improved
//     cell is pushed again and outdated entries are discarded when popped.
//   - Every call owns its own g-score, parent and frontier tables. Nothing is
//     cached between calls, so concurrent searches over one immutable grid need
//     no coordination.
//
// Determinism:
//
//	Neighbours are generated in the fixed order up, down, left, right. Entries
//	with equal f are ordered by larger g first, then by insertion order (FIFO).
//	The same grid, start and goal therefore always yield the same path.
//
// Outcomes:
//
//   - Found:     Result.Found is true and Result.Path runs start→goal inclusive.
//   - Not found: Result.Found is false, Result.Path is nil and err is nil.
//     An unreachable goal is a normal answer, not an error.
//   - Invalid:   err wraps ErrInvalidInput (nil grid, start/goal out of bounds
//     or on an obstacle, empty or ragged matrix).
//
// Complexity:
//
//   - Time:  O(E log E), E = number of frontier pushes (at most 4 per improvement).
//   - Space: O(V + E), V = cells reached. Tables are sized by the explored
//     area, so a short search on a huge grid stays cheap.
//
// Example usage:
//
//	res, err := astar.FindPathInMatrix(grid, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 2, Col: 2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Found {
//	    fmt.Println("no path")
//	}
package astar
