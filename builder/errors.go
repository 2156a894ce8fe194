// SPDX-License-Identifier: MIT
// Package: bisect/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative sequence length.
// Usage: if errors.Is(err, ErrBadSize) { /* fix n */ }.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrBadStep indicates a negative Ramp step, which would produce a
// decreasing sequence.
var ErrBadStep = errors.New("builder: step must be non-negative")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand in the resolved builderConfig (WithSeed/WithRand).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOverflow indicates that the requested sequence does not fit in int64.
var ErrOverflow = errors.New("builder: value overflows int64")

// wrapf prefixes err with the method name and a formatted detail while
// keeping the sentinel reachable for errors.Is.
// Complexity: O(len(format) + Σlen(args)).
func wrapf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
