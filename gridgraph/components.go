package gridgraph

// FreeRegions finds all contiguous regions of free cells under
// 4-connectivity. Regions are returned in row-major order of their first
// cell; each region lists its cells in BFS discovery order.
//
// Two cells can be joined by a path exactly when they share a region.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (gg *GridGraph) FreeRegions() [][]Cell {
	seen := make([]bool, gg.rows*gg.cols)
	var regions [][]Cell

	for r := 0; r < gg.rows; r++ {
		for c := 0; c < gg.cols; c++ {
			first := Cell{Row: r, Col: c}
			if !gg.IsFree(first) || seen[gg.index(first)] {
				continue
			}
			// BFS to collect region
			queue := []Cell{first}
			seen[gg.index(first)] = true
			for qi := 0; qi < len(queue); qi++ {
				for _, n := range gg.Neighbors(queue[qi]) {
					ni := gg.index(n)
					if !seen[ni] {
						seen[ni] = true
						queue = append(queue, n)
					}
				}
			}
			regions = append(regions, queue)
		}
	}

	return regions
}

// RegionLabels returns a table with the region number of every cell as
// numbered by FreeRegions, or -1 for obstacles.
func (gg *GridGraph) RegionLabels() [][]int {
	labels := make([][]int, gg.rows)
	for r := range labels {
		labels[r] = make([]int, gg.cols)
		for c := range labels[r] {
			labels[r][c] = -1
		}
	}
	for id, region := range gg.FreeRegions() {
		for _, cell := range region {
			labels[cell.Row][cell.Col] = id
		}
	}

	return labels
}

// Connected reports whether a and b are free cells in the same region.
func (gg *GridGraph) Connected(a, b Cell) bool {
	if !gg.IsFree(a) || !gg.IsFree(b) {
		return false
	}
	labels := gg.RegionLabels()

	return labels[a.Row][a.Col] == labels[b.Row][b.Col]
}
