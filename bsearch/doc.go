// Package bsearch implements interval-halving (binary) search over
// sequences sorted in non-decreasing order.
//
// What:
//
//   - Search: returns an index i with s[i] == target, or NotFound (-1).
//   - Find: comma-ok form of Search.
//   - SearchFunc: the same loop driven by a three-way comparator, for
//     sequences of structs searched by key.
//   - Trace: the same loop, reporting how many probes were made and
//     calling an optional per-probe hook.
//   - SearchChecked: verifies the sortedness precondition first and
//     returns ErrUnsorted when it does not hold.
//
// Why:
//   - Locate a value in a sorted table in O(log n) comparisons
//   - Keep "not found" an ordinary result, not an error
//   - Offer a checked entry point for untrusted input
//
// Algorithm:
//
//	low, high := 0, len(s)-1
//	while low <= high:
//	    mid := low + (high-low)/2
//	    s[mid] == target → return mid
//	    s[mid] <  target → low  = mid + 1
//	    s[mid] >  target → high = mid - 1
//	return NotFound
//
// Every iteration removes mid from [low, high], so the interval strictly
// shrinks and the loop terminates after at most bits.Len(n) probes.
//
// Duplicates:
//
//	If several elements equal target, the index of any one of them may be
//	returned. Callers must not rely on getting the first or the last one.
//
// Complexity:
//
//   - Search, Find, SearchFunc, Trace: Time O(log n), Memory O(1)
//   - IsSorted, SearchChecked:         Time O(n),     Memory O(1)
//
// Errors:
//
//   - ErrUnsorted  sequence is not in non-decreasing order (SearchChecked only)
//
// Concurrency:
//
//	All functions are pure: they only read the input, hold no state and
//	may be called from any number of goroutines on shared slices.
package bsearch
