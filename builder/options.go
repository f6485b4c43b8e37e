// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// options.go - functional options resolved into builderConfig.

package builder

import "math/rand"

// BuilderOption customizes builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithSeed installs a deterministic RNG seeded with seed.
// Required by RandomSparse for 0 < p < 1; also feeds stochastic WeightFns.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs a caller-owned RNG. A nil rng clears randomness.
func WithRand(rng *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rng
	}
}

// WithIDScheme sets the vertex naming scheme. A nil fn is ignored.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithWeightFn sets the edge-cost generator. A nil fn is ignored.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}
