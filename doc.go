// Package bisect is a small, dependency-light library for searching sorted
// sequences by interval halving.
//
// What is bisect?
//
//	A pure-Go toolkit built around one routine: given a sequence sorted in
//	non-decreasing order and a target, return an index whose element equals
//	the target, or -1.
//
// Under the hood, everything is organized under these subpackages:
//
//	bsearch/    — Search, Find, SearchFunc, Trace, SearchChecked
//	builder/    — deterministic sorted sequence generators (Ramp, Constant, RandomSorted)
//	cmd/bisect/ — command-line front end
//	examples/   — runnable scenario programs
//
// Quick example:
//
//	prices := []int{1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000, 9000, 10000}
//	bsearch.Search(prices, 8000) // 7
//	bsearch.Search(prices, 8400) // -1
//
//	go get github.com/katalvlaran/bisect
package bisect
