// Package gridgraph treats a rectangular 2D grid of integer cells as an
// implicit 4-connected graph of free cells, the adapter every search in
// this module runs over.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable ObstacleThreshold.
//   - Answers InBounds / IsFree queries for a Cell{Row, Col}.
//   - Enumerates the orthogonal neighbours of a cell in a fixed order: up, down, left, right.
//   - Identifies connected regions of free cells.
//
// Why:
//
//   - Game maps: walkable areas, quick reachability checks before a search.
//   - Robotics simulation: occupancy grids with 0 = free, 1 = occupied.
//   - Puzzle solvers: mazes given as text or matrices.
//
// Complexity:
//
//   - NewGridGraph:  O(R×C) time and memory (deep copy).
//   - InBounds, IsFree, Neighbors: O(1).
//   - FreeRegions:   O(R×C), Memory: O(R×C).
//
// Options:
//
//   - GridOptions.ObstacleThreshold: minimum value considered an obstacle.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//
// A GridGraph is immutable once built: its fields are unexported and it holds
// a private copy of the input, so it is safe for concurrent readers.
package gridgraph
