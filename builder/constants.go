// SPDX-License-Identifier: MIT
// Package: bisect/builder

package builder

// Method names used as error prefixes.
const (
	MethodRamp         = "Ramp"
	MethodConstant     = "Constant"
	MethodRandomSorted = "RandomSorted"
)

// MinLength is the smallest sequence length accepted by constructors.
const MinLength = 0

// Deterministic defaults (named, no magic numbers).
const (
	defaultBase   = int64(0)  // first value of RandomSorted
	defaultMaxGap = int64(10) // largest gap between neighbours in RandomSorted
)
