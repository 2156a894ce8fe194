// Package builder generates deterministic sorted integer sequences used as
// inputs for search routines: fixtures in tests, workloads in benchmarks,
// data for examples and the CLI.
//
// The package offers the following key components:
//
//   - Constructors:
//     – Ramp:          arithmetic progression start, start+step, ...
//     – Constant:      n copies of one value (all duplicates).
//     – RandomSorted:  non-decreasing sequence from random gaps (needs an RNG).
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – builderConfig: holds RNG, base value and maximal gap.
//   - Validation helpers:
//     – validateMin:   ensure integer ≥ minimum.
//
// Guarantees:
//
//   - Every returned slice is sorted in non-decreasing order.
//   - n == 0 yields an empty, non-nil slice.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors for invalid build parameters, matchable with
//     errors.Is against the package sentinels.
//   - Same seed, same options → same sequence.
package builder
