// SPDX-License-Identifier: MIT
// Package: bisect/bsearch
//
// types.go — sentinel index, trace result and functional options.

package bsearch

// NotFound is the index returned when no element equals the target.
// It is never a valid index.
const NotFound = -1

// Result captures the outcome of a traced search.
type Result struct {
	// Index is a position i with s[i] == target, or NotFound.
	Index int

	// Found reports whether Index is a valid match.
	Found bool

	// Probes counts element comparisons made, one per loop iteration.
	Probes int
}

// ProbeFunc observes one iteration of the search loop: mid is the probed
// position and [low, high] the closed interval in effect when it was chosen.
type ProbeFunc func(mid, low, high int)

// Option configures optional behavior of Trace.
type Option func(*Options)

// Options holds configurable parameters for Trace.
type Options struct {
	// OnProbe, if non-nil, is invoked once per iteration before the
	// comparison at mid is evaluated.
	OnProbe ProbeFunc
}

// DefaultOptions returns Options with no probe hook.
func DefaultOptions() Options {
	return Options{OnProbe: nil}
}

// WithProbe returns an Option that installs fn as the per-iteration hook.
// Panics on nil to surface programmer error early.
func WithProbe(fn ProbeFunc) Option {
	if fn == nil {
		panic("bsearch: WithProbe(nil)")
	}
	return func(o *Options) {
		o.OnProbe = fn
	}
}
