// SPDX-License-Identifier: MIT
// Package: bisect/bsearch
//
// search.go — the interval-halving loop and its variants.
//
// Contract:
//   • Input is sorted in non-decreasing order (not validated here).
//   • Returns some index of an element equal to target, or NotFound.
//   • Never writes to the input; no I/O, no global state.

package bsearch

import "cmp"

// Search returns an index i such that s[i] == target, or NotFound if no
// element of s equals target. s must be sorted in non-decreasing order.
// With duplicates, which matching index is returned is unspecified.
// Elements are ordered as by cmp.Compare, so NaNs sort before all numbers.
// Complexity: O(log n) time, O(1) space.
func Search[S ~[]E, E cmp.Ordered](s S, target E) int {
	low, high := 0, len(s)-1 // closed interval [low, high]
	for low <= high {
		mid := low + (high-low)/2 // no overflow on large indices
		switch c := cmp.Compare(s[mid], target); {
		case c == 0:
			return mid
		case c < 0:
			low = mid + 1 // target lies right of mid
		default:
			high = mid - 1 // target lies left of mid
		}
	}

	return NotFound // interval empty
}

// Find is the comma-ok form of Search: it returns (i, true) with
// s[i] == target, or (NotFound, false).
func Find[S ~[]E, E cmp.Ordered](s S, target E) (int, bool) {
	i := Search(s, target)

	return i, i != NotFound
}

// SearchFunc is like Search but compares with cmp, which must return a
// negative number when the element orders before target, zero when it
// matches, and a positive number when it orders after. s must be sorted
// in the order cmp defines. A nil cmp panics.
// Complexity: O(log n) calls to cmp.
func SearchFunc[S ~[]E, E, T any](s S, target T, cmp func(E, T) int) int {
	low, high := 0, len(s)-1
	for low <= high {
		mid := low + (high-low)/2
		c := cmp(s[mid], target)
		if c == 0 {
			return mid
		}
		if c < 0 {
			low = mid + 1
		} else {
			high = mid - 1
		}
	}

	return NotFound
}

// Trace runs the same loop as Search and reports the number of probes
// made. If WithProbe is given, the hook is called once per iteration with
// the probed position and the interval it was chosen from.
// Probes never exceeds bits.Len(uint(len(s))).
func Trace[S ~[]E, E cmp.Ordered](s S, target E, opts ...Option) Result {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := Result{Index: NotFound}
	low, high := 0, len(s)-1
	for low <= high {
		mid := low + (high-low)/2
		res.Probes++
		if o.OnProbe != nil {
			o.OnProbe(mid, low, high)
		}
		switch c := cmp.Compare(s[mid], target); {
		case c == 0:
			res.Index, res.Found = mid, true
			return res
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return res
}
