// SPDX-License-Identifier: MIT
// Package: bisect/builder
//
// sequences.go — sorted sequence constructors.
//
// Contract:
//   • Output is non-decreasing; n == 0 returns an empty non-nil slice.
//   • Pure apart from draws from cfg.rng.

package builder

import (
	"math"
	"math/bits"
)

// Ramp returns the arithmetic progression start, start+step, ..., of length n.
// step must be ≥ 0; step 0 yields n copies of start.
// Ramp(10, 1000, 1000) is [1000 2000 ... 10000].
// Complexity: O(n) time and space.
func Ramp(n int, start, step int64) ([]int64, error) {
	if err := validateMin(MethodRamp, ErrBadSize, n, MinLength); err != nil {
		return nil, err
	}
	if step < 0 {
		return nil, wrapf(MethodRamp, ErrBadStep, "got %d", step)
	}
	if !fits(start, step, n) {
		return nil, wrapf(MethodRamp, ErrOverflow, "n=%d start=%d step=%d", n, start, step)
	}

	out := make([]int64, n)
	v := start
	for i := range out {
		out[i] = v
		v += step
	}

	return out, nil
}

// Constant returns n copies of v.
// Complexity: O(n) time and space.
func Constant(n int, v int64) ([]int64, error) {
	if err := validateMin(MethodConstant, ErrBadSize, n, MinLength); err != nil {
		return nil, err
	}

	out := make([]int64, n)
	for i := range out {
		out[i] = v
	}

	return out, nil
}

// RandomSorted returns a non-decreasing sequence of length n. The first
// value is base (WithBase); every following value adds a uniform gap drawn
// from [0, maxGap] (WithMaxGap). An RNG must be supplied via WithSeed or
// WithRand. The worst case base+(n-1)*maxGap must fit in int64.
// Complexity: O(n) time and space.
func RandomSorted(n int, opts ...BuilderOption) ([]int64, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateMin(MethodRandomSorted, ErrBadSize, n, MinLength); err != nil {
		return nil, err
	}
	if cfg.rng == nil {
		return nil, wrapf(MethodRandomSorted, ErrNeedRandSource, "use WithSeed or WithRand")
	}
	if !fits(cfg.base, cfg.maxGap, n) {
		return nil, wrapf(MethodRandomSorted, ErrOverflow, "n=%d base=%d maxGap=%d", n, cfg.base, cfg.maxGap)
	}

	out := make([]int64, n)
	v := cfg.base
	for i := range out {
		if i > 0 && cfg.maxGap > 0 {
			v += cfg.rng.Int63n(cfg.maxGap + 1) // gap in [0, maxGap]
		}
		out[i] = v
	}

	return out, nil
}

// fits reports whether start+(n-1)*step stays within int64 for step ≥ 0.
// Headroom is computed modulo 2^64, which is exact for any start.
func fits(start, step int64, n int) bool {
	if n <= 1 || step == 0 {
		return true
	}
	hi, span := bits.Mul64(uint64(step), uint64(n-1))
	if hi != 0 {
		return false
	}

	return span <= uint64(math.MaxInt64)-uint64(start)
}
