package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// initialFrontier is the starting capacity of the frontier slice.
const initialFrontier = 16

// nodeItem is one frontier entry. Several entries for the same cell may be
// queued at once; only the one whose g matches the runner's g-score is live.
type nodeItem struct {
	cell gridgraph.Cell
	g    int // cost from start when pushed
	f    int // g + Manhattan(cell, goal)
	seq  int // insertion order
}

// nodePQ is a min-heap of *nodeItem.
//
// Ordering: ascending f; on equal f, descending g (the entry with less
// heuristic slack left); on equal f and g, ascending seq (FIFO).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less implements the fixed tie-break described on nodePQ.
func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g > b.g
	}
	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element of the backing slice.
// Called by heap.Pop after it has moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
