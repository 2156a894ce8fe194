// SPDX-License-Identifier: MIT
// Package: bisect/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng    = nil  (RandomSorted fails with ErrNeedRandSource)
//   • base   = 0
//   • maxGap = 10

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng    *rand.Rand // nil means "no randomness"
	base   int64      // RandomSorted first value
	maxGap int64      // RandomSorted gap bound, >= 0
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		base:   defaultBase,
		maxGap: defaultMaxGap,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
