package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

// ExampleGraph_NeighborFunc builds a small road network and searches it.
func ExampleGraph_NeighborFunc() {
	// 1) Undirected graph: every road can be driven both ways.
	g := core.NewGraph()
	_ = g.AddEdge("Depot", "Mill", 4)
	_ = g.AddEdge("Depot", "Ford", 1)
	_ = g.AddEdge("Ford", "Mill", 2)

	// 2) Search from the depot to the mill through the adapter.
	res, err := dijkstra.SearchTo("Depot", "Mill", g.NeighborFunc())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, _ := res.PathTo("Mill")
	fmt.Println(p)
	// Output: Depot → Ford → Mill (cost 3)
}
