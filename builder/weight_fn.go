// Package builder provides internal helper functions and types
// for configuring edge‐cost distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvpath/dijkstra"
)

// DefaultEdgeWeight is the cost assigned to each edge when no custom WeightFn is provided.
const DefaultEdgeWeight dijkstra.Cost = 1

// WeightFn produces an edge cost given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) dijkstra.Cost

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) dijkstra.Cost {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
func ConstantWeightFn(value dijkstra.Cost) WeightFn {
	return func(_ *rand.Rand) dijkstra.Cost {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics if max < min. If rng is nil, yields min.
func UniformWeightFn(min, max dijkstra.Cost) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) dijkstra.Cost {
		if rng == nil {
			return min
		}
		if span == 0 { // full uint64 range
			return rng.Uint64()
		}

		return min + rng.Uint64()%span
	}
}
