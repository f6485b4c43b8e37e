// Package yen_test provides runnable examples for the K-shortest-paths search.
package yen_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/yen"
)

// ExampleKShortest ranks the loopless A→D routes of a small directed graph.
func ExampleKShortest() {
	edges := map[string][]dijkstra.Edge[string]{
		"A": {{To: "B", Cost: 1}, {To: "C", Cost: 4}},
		"B": {{To: "C", Cost: 1}, {To: "D", Cost: 5}},
		"C": {{To: "D", Cost: 1}},
	}
	neighbors := func(n string) []dijkstra.Edge[string] { return edges[n] }

	paths, err := yen.KShortest("A", "D", neighbors, yen.WithMaxK(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	// Output:
	// A → B → C → D (cost 3)
	// A → C → D (cost 5)
	// A → B → D (cost 6)
}

// ExampleKShortest_maxDistance keeps only the routes that fit a budget.
func ExampleKShortest_maxDistance() {
	g := core.NewGraph()
	_ = g.AddEdge("home", "bridge", 2)
	_ = g.AddEdge("bridge", "work", 2)
	_ = g.AddEdge("home", "ferry", 1)
	_ = g.AddEdge("ferry", "work", 5)
	_ = g.AddEdge("home", "work", 9)

	paths, err := yen.KShortest("home", "work", g.NeighborFunc(), yen.WithMaxDistance(6))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range paths {
		fmt.Println(p.Nodes(), p.Cost())
	}
	// Output:
	// [home bridge work] 4
	// [home ferry work] 6
}
