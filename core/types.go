// Package core defines the explicit Graph type and provides thread-safe
// primitives for building a weighted graph and exposing it to the search
// packages as a neighbor function.
//
// This file declares Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/lvpath/dijkstra"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge represents one stored connection between two vertices.
// In an undirected graph a single Edge is traversable both ways.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Cost is the non-negative weight of the edge.
	Cost dijkstra.Cost
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory weighted graph keyed by string vertex IDs.
//
// Parallel edges are kept; the search simply relaxes each one.
// mu guards every field below it, so a Graph may be read by several Yen
// workers while another goroutine adds edges between searches.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool // edges are one-way
	allowLoops bool // allow self-loops

	// Storage
	vertices map[string]struct{}
	edges    []Edge

	// adjacency[from] lists outgoing steps in insertion order;
	// undirected edges are mirrored into adjacency[to].
	adjacency map[string][]dijkstra.Edge[string]
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected with no loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string][]dijkstra.Edge[string]),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
