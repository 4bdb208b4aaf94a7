// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleGridGraph_FreeRegions demonstrates how to identify
// walkable regions of a grid before searching it.
// Scenario:
//
//   - Grid values: 0 = free, 1 = obstacle
//   - A vertical wall in column 2 splits the map in two.
//
// Complexity: O(R·C), Memory: O(R·C)
func ExampleGridGraph_FreeRegions() {
	grid := [][]int{
		{0, 0, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 1, 0},
	}
	gg, _ := gridgraph.From2D(grid)

	regions := gg.FreeRegions()
	fmt.Println("regions:", len(regions))
	for i, region := range regions {
		fmt.Printf("region %d: %d cells, first %v\n", i, len(region), region[0])
	}

	// Output:
	// regions: 2
	// region 0: 6 cells, first (0,0)
	// region 1: 3 cells, first (0,3)
}

// ExampleGridGraph_Neighbors shows the fixed up, down, left, right order.
func ExampleGridGraph_Neighbors() {
	gg, _ := gridgraph.From2D([][]int{
		{0, 0, 0},
		{1, 0, 0},
		{0, 0, 0},
	})
	fmt.Println(gg.Neighbors(gridgraph.Cell{Row: 1, Col: 1}))

	// Output:
	// [(0,1) (2,1) (1,2)]
}
