// Package dijkstra provides a generic implementation of Dijkstra's
// shortest-path search over implicitly-defined graphs with non-negative
// edge weights.
//
// Overview:
//
//   - The graph is never materialised. The caller passes a NeighborFunc[T]
//     that maps a node to its outgoing steps (Edge[T]{To, Cost}). Nodes are
//     opaque values of any comparable type: strings, integers, grid cells,
//     or composite state structs such as (position, orientation).
//   - Search runs from a start node until the first node satisfying a stop
//     predicate is popped from the priority queue, or until the queue is
//     exhausted. SearchTo is the exact-target convenience form and
//     ShortestCost the minimal form returning only the terminal cost.
//   - The Result maps every reached node to the best Path found to it, and
//     reports which node satisfied the predicate.
//
// When to use:
//
//   - State-space searches where neighbors are computed on demand.
//   - As the building block of package yen (K shortest loopless paths).
//   - Together with core.Graph or gridgraph.GridGraph for explicit graphs.
//
// Key features:
//
//   - Functional options: WithContext, WithMaxDistance, WithMaxPops.
//   - Deterministic tie-breaking: equal distances are popped in push order.
//   - Stats: pops, stale pops, pushes and relaxations of each search.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each relaxation that improves a node pushes one heap entry (lazy decrease-key).
//   - Stale entries are detected on pop by comparing against the recorded best path.
//   - Space: O(V·L + E), every reached node keeps its full Path of length ≤ L.
//
// Error handling (sentinel errors):
//
//   - ErrNilNeighbors:
//     Returned if the neighbor function is nil.
//   - ErrOptionViolation:
//     Returned if an option was given an invalid value (e.g. negative MaxPops).
//   - ErrSearchLimit:
//     Returned together with the partial Result when MaxPops is reached.
//
// Unreachability is not an error: the target is simply absent from
// Result.Paths and Result.Found is false.
//
// Contract violations (not detected):
//
//   - A neighbor function with side effects, or one that is not safe for
//     concurrent use when shared with package yen.
//   - An always-false stop predicate over an infinite graph never terminates.
//   - Cost overflow of a path sum beyond math.MaxUint64.
//
// API reference:
//
//	func Search[T comparable](start T, stop func(T) bool, neighbors NeighborFunc[T], opts ...Option) (*Result[T], error)
//	func SearchTo[T comparable](start, target T, neighbors NeighborFunc[T], opts ...Option) (*Result[T], error)
//	func ShortestCost[T comparable](start, target T, neighbors NeighborFunc[T]) (Cost, bool)
//
// Thread safety:
//
//   - Every call allocates its own state; concurrent calls are independent as
//     long as the neighbor function is safe for concurrent use.
//
// See also:
//
//   - yen.KShortest: the 2nd, 3rd, … shortest loopless paths.
//   - core.Graph.NeighborFunc and gridgraph.GridGraph.NeighborFunc.
package dijkstra
