// Package yen finds the K shortest loopless paths between two nodes with
// Yen's algorithm, built on package dijkstra.
//
// Overview:
//
//   - The first path is the plain Dijkstra shortest path.
//   - Every iteration takes the most recently accepted path and, for each of
//     its positions except the last, searches for a deviation (a spur path)
//     on a restricted view of the graph:
//     the root prefix up to the spur node is kept,
//     the root nodes before the spur node are removed,
//     and the outgoing edges used at the spur node by accepted paths sharing
//     the same root are removed.
//   - Root and spur are spliced into a candidate whose distances continue
//     the root's. Candidates live in a pool that survives across
//     iterations; the cheapest one becomes the next accepted path.
//
// Determinism:
//
// The spur searches of one iteration are independent and run on a bounded
// worker pool (errgroup with SetLimit). Results are merged into the pool in
// ascending spur position after all workers joined, and the pool breaks
// cost ties by offer order, so the output never depends on Workers or on
// goroutine scheduling.
//
// Key features:
//
//   - Functional options: WithContext, WithMaxK, WithMaxDistance,
//     WithWorkers, WithMaxIterations, WithLogger.
//   - Generic over any comparable node type, same as package dijkstra.
//   - Root-prefix lookups through a trie of accepted node sequences, so the
//     edge exclusion at a spur node costs O(len(root)).
//
// Performance and complexity:
//
//   - Time:  O(K · L · D) where L is the path length and D one Dijkstra run.
//   - Space: O(K · L) for the accepted paths plus the candidate pool.
//
// Error handling (sentinel errors):
//
//   - ErrOptionViolation: an option was given an invalid value.
//   - ErrIterationLimit: MaxIterations reached; the paths found so far are
//     returned with it.
//   - dijkstra.ErrNilNeighbors: nil neighbor function.
//
// An unreachable end node yields an empty result and a nil error.
//
// Thread safety:
//
// KShortest is safe to call concurrently. The neighbor function is invoked
// from several goroutines at once and must not mutate shared state.
//
// See also:
//
//   - package dijkstra for the single-source search used for every spur.
//   - package core and package gridgraph for ready-made neighbor functions.
package yen
