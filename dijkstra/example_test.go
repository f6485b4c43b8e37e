// Package dijkstra_test provides examples demonstrating how to use the Dijkstra search.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/dijkstra"
)

// ExampleSearchTo demonstrates an exact-target search over a neighbor function.
// Complexity: O((V+E) log V).
func ExampleSearchTo() {
	// 1) Describe the graph implicitly: a map lookup is enough.
	edges := map[string][]dijkstra.Edge[string]{
		"A": {{To: "B", Cost: 1}, {To: "C", Cost: 4}},
		"B": {{To: "C", Cost: 1}, {To: "D", Cost: 5}},
		"C": {{To: "D", Cost: 1}},
	}
	neighbors := func(n string) []dijkstra.Edge[string] { return edges[n] }

	// 2) Search from A until D is popped.
	res, err := dijkstra.SearchTo("A", "D", neighbors)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Print the best path.
	p, _ := res.PathTo("D")
	fmt.Println(p)
	// Output: A → B → C → D (cost 3)
}

// ExampleSearch demonstrates predicate termination on an unbounded state space:
// integers where n→n+1 costs 1 and n→2n costs 1. The search stops at the
// first value ≥ 10.
func ExampleSearch() {
	neighbors := func(n int) []dijkstra.Edge[int] {
		return []dijkstra.Edge[int]{{To: n + 1, Cost: 1}, {To: 2 * n, Cost: 1}}
	}
	res, err := dijkstra.Search(1, func(n int) bool { return n >= 10 }, neighbors)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, _ := res.PathTo(res.Reached)
	fmt.Println(p.Nodes(), p.Cost())
	// Output: [1 2 3 6 12] 4
}

// ExampleShortestCost shows the minimal form that reports only the cost.
func ExampleShortestCost() {
	neighbors := func(n int) []dijkstra.Edge[int] {
		if n >= 5 {
			return nil
		}
		return []dijkstra.Edge[int]{{To: n + 1, Cost: 2}}
	}
	cost, ok := dijkstra.ShortestCost(0, 5, neighbors)
	fmt.Println(cost, ok)
	_, ok = dijkstra.ShortestCost(0, 9, neighbors)
	fmt.Println(ok)
	// Output:
	// 10 true
	// false
}
