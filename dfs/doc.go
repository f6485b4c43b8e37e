// Package dfs enumerates every simple (loopless) path between two nodes by
// depth-first search over a dijkstra.NeighborFunc.
//
// It is the exhaustive counterpart of package yen: where yen ranks the K
// cheapest loopless paths, SimplePaths lists all of them in discovery order.
// On small graphs the two must agree on the multiset of path costs, which
// makes SimplePaths a reference for testing.
//
// Complexity:
//
//   - Time:   O(P · L) where P is the number of simple paths explored and L
//     their length; P is exponential in V on dense graphs.
//   - Memory: O(V) for the current branch plus the collected paths.
//
// Options:
//
//   - WithContext(ctx)      cancellation, checked on every visited node.
//   - WithMaxDepth(limit)   at most limit edges per path.
//   - WithMaxDistance(max)  prune branches costing more than max.
//   - WithMaxPaths(n)       stop with ErrPathLimit after n paths.
//   - WithOnVisit(fn)       pre-order hook; an error aborts enumeration.
//
// Errors:
//
//   - ErrOptionViolation        invalid option value.
//   - ErrPathLimit              MaxPaths reached; partial result returned.
//   - dijkstra.ErrNilNeighbors  nil neighbor function.
//   - context.Canceled          if ctx is done.
package dfs
