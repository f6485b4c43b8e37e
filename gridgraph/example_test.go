package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/gridgraph"
)

// ExampleParseRunes solves a small maze read from text and draws the route.
func ExampleParseRunes() {
	maze := "S#...\n" +
		".#.#.\n" +
		"...#E\n"
	values, start, end, err := gridgraph.ParseRunes(maze)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	gg, _ := gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())

	res, _ := dijkstra.SearchTo(start, end, gg.NeighborFunc())
	p, _ := res.PathTo(end)
	fmt.Println(p.Cost())
	fmt.Println(gg.Render(p.Nodes()))
	// Output:
	// 10
	// *#***
	// *#*#*
	// ***#*
}

// ExampleGridGraph_ConnectedComponents lists the regions of open cells.
// Values ≥1 are open, so the 3 in the corner joins its neighbors.
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	gg, _ := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, c := range comp {
			fmt.Printf(" (%v)", c)
		}
		fmt.Println()
	}
	// Output:
	// components: 2
	// component 0: (1,0) (2,0) (1,1) (0,1) (0,2)
	// component 1: (4,0) (4,1) (3,1) (3,2) (2,2)
}
