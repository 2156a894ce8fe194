// SPDX-License-Identifier: MIT
// Package: bisect/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before the sequence is generated.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBase sets the first value of RandomSorted. Any value is accepted.
func WithBase(v int64) BuilderOption {
	return func(c *builderConfig) {
		c.base = v
	}
}

// WithMaxGap sets the largest gap between neighbours in RandomSorted.
// A gap of 0 produces a constant run. Panics if gap < 0, since a negative
// gap would break the ordering.
func WithMaxGap(gap int64) BuilderOption {
	if gap < 0 {
		panic("builder: WithMaxGap(gap<0)")
	}
	return func(c *builderConfig) {
		c.maxGap = gap
	}
}
