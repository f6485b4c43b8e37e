// Package lvpath is a small toolkit for ranking routes through weighted
// graphs: the single shortest path, and the K shortest loopless paths.
//
// What is inside?
//
//	• dijkstra/  – generic Dijkstra over any comparable node type, driven by a
//	               neighbor function; stop predicates, distance bounds, stats
//	• yen/       – Yen's K shortest loopless paths on top of dijkstra, with the
//	               spur searches of each iteration run on a bounded worker pool
//	• core/      – thread-safe explicit graph with string vertex IDs
//	• gridgraph/ – 2D grids as graphs: walls, 4/8 connectivity, terrain costs
//
// Why lvpath?
//
//   - Nodes are values, not IDs: positions, (position, heading) states or
//     plain strings all work without building a graph first.
//   - Deterministic output: ties are broken by discovery order, and the
//     parallel spur phase never changes the ranking.
//   - Every search takes a context and optional hard limits.
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │╲5
//	    4     1  D
//	    │     │╱1
//	    └─────C
//
//	A→B→C→D costs 3, A→C→D costs 5, A→B→D costs 6.
//
// The lvpath command (cmd/lvpath) exposes the same searches over TOML or
// YAML graph documents and text maps.
//
//	go install github.com/katalvlaran/lvpath/cmd/lvpath@latest
package lvpath
