// Package bfs provides breadth-first search over a 4-connected grid,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore free cells in non-decreasing distance (moves) from a start cell.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from cell → distance (moves) from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - OnVisit hook, which may abort the walk with an error.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Exhaustive reference for unit-cost shortest paths: every A* result in
//     this module can be checked against Depth[goal].
//   - Reachability and distance fields for a whole grid in O(R×C).
//
// Determinism
//
//	Neighbours are enqueued in gridgraph.Offsets order (up, down, left, right),
//	so the visit sequence is fully reproducible.
//
// Complexity (N = R×C)
//
//   - Time:   O(N)   (each cell and each of its ≤4 moves seen at most once)
//   - Memory: O(N)
package bfs
