// Package core provides a thread-safe in-memory weighted Graph with string
// vertex IDs and a minimal API surface, meant to be searched through the
// neighbor-function interface of packages dijkstra and yen.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Self-loops (WithLoops)
//   - Parallel edges (always kept; each is relaxed independently)
//   - Non-negative uint64 costs (dijkstra.Cost)
//   - A single sync.RWMutex guarding vertices, edges and adjacency
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, cost dijkstra.Cost) error // O(1) amortized
//
//	// Query
//	Neighbors(id string) ([]dijkstra.Edge[string], error) // O(deg), insertion order
//	NeighborFunc() dijkstra.NeighborFunc[string]          // adapter for searches
//	Vertices() []string                                   // O(V·log V), sorted
//	Edges() []Edge                                        // O(E), insertion order
//
// Neighbor order is insertion order, so searches over a Graph built the
// same way are reproducible.
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrLoopNotAllowed – self-loop when loops disabled
package core
