package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvpath/dijkstra"
)

// Directed reports whether edges of g are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// AddVertex inserts a vertex with the given id. Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID for an empty id.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked inserts id; caller holds mu.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; !ok {
		g.vertices[id] = struct{}{}
	}
}

// HasVertex reports whether a vertex with the given id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts an edge from→to with the given cost, creating missing
// endpoints. In an undirected graph the edge is traversable in both
// directions; a self-loop is stored once.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, cost dijkstra.Cost) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.edges = append(g.edges, Edge{From: from, To: to, Cost: cost})
	g.adjacency[from] = append(g.adjacency[from], dijkstra.Edge[string]{To: to, Cost: cost})
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], dijkstra.Edge[string]{To: from, Cost: cost})
	}

	return nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Edges returns a copy of all stored edges in insertion order.
// Undirected edges appear once, as they were added.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of stored edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns the outgoing steps of id in insertion order.
// Returns ErrVertexNotFound if id is unknown.
// Complexity: O(deg(id)) for the defensive copy.
func (g *Graph) Neighbors(id string) ([]dijkstra.Edge[string], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	adj := g.adjacency[id]
	out := make([]dijkstra.Edge[string], len(adj))
	copy(out, adj)

	return out, nil
}

// NeighborFunc adapts g to dijkstra.NeighborFunc. Unknown vertices have no
// neighbors. The returned function takes a read lock per call and is safe for
// concurrent use.
func (g *Graph) NeighborFunc() dijkstra.NeighborFunc[string] {
	return func(id string) []dijkstra.Edge[string] {
		out, err := g.Neighbors(id)
		if err != nil {
			return nil
		}

		return out
	}
}
