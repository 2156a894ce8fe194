// SPDX-License-Identifier: MIT
// Package: bisect/bsearch
//
// checked.go — precondition validation for callers with untrusted input.

package bsearch

import "cmp"

// IsSorted reports whether s is in non-decreasing order.
// Complexity: O(n) time, O(1) space.
func IsSorted[S ~[]E, E cmp.Ordered](s S) bool {
	return firstDescent(s) < 0
}

// SearchChecked validates that s is sorted and then runs Search.
// On unsorted input it returns (NotFound, err) with errors.Is(err, ErrUnsorted).
// An absent target yields (NotFound, nil): absence is not an error.
// Complexity: O(n) for the check plus O(log n) for the search.
func SearchChecked[S ~[]E, E cmp.Ordered](s S, target E) (int, error) {
	if i := firstDescent(s); i >= 0 {
		return NotFound, searchErrorf(methodSearchChecked, ErrUnsorted,
			"s[%d] > s[%d]", i-1, i)
	}

	return Search(s, target), nil
}

// firstDescent returns the smallest i with s[i-1] > s[i], or -1.
// cmp.Less keeps NaN handling consistent with cmp.Compare.
func firstDescent[S ~[]E, E cmp.Ordered](s S) int {
	for i := 1; i < len(s); i++ {
		if cmp.Less(s[i], s[i-1]) {
			return i
		}
	}

	return -1
}
