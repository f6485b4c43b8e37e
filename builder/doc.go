// Package builder constructs deterministic core.Graph topologies for tests,
// benchmarks and examples: paths, cycles, complete graphs, lattices and
// seeded random sparse graphs.
//
// Usage:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(true)},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//		builder.RandomSparse(50, 0.1),
//	)
//
// Constructors compose: BuildGraph applies them in order on the same graph,
// so Cycle(5) followed by Path(3) shares vertices "0", "1" and "2".
//
// Determinism: same options, seed and constructor order yield the same
// vertices, edges (in the same insertion order) and costs.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed, plus wrapped core errors.
package builder
