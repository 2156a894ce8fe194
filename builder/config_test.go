// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestDefaultConfig verifies the deterministic defaults.
func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	if cfg.base != defaultBase {
		t.Errorf("default base: expected %d, got %d", defaultBase, cfg.base)
	}
	if cfg.maxGap != defaultMaxGap {
		t.Errorf("default maxGap: expected %d, got %d", defaultMaxGap, cfg.maxGap)
	}
}

// TestRNGOptions verifies that WithSeed is reproducible and WithRand attaches
// the given source as is.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. Same seed → same first draw
	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	if x, y := a.rng.Int63(), b.rng.Int63(); x != y {
		t.Errorf("WithSeed: expected equal draws, got %d and %d", x, y)
	}

	// 2. WithRand keeps the pointer
	r := rand.New(rand.NewSource(7))
	c := newBuilderConfig(WithRand(r))
	if c.rng != r {
		t.Errorf("WithRand: expected provided rng to be stored")
	}

	// 3. Nil RNG panics in the option constructor
	defer func() {
		if recover() == nil {
			t.Errorf("WithRand(nil): expected panic")
		}
	}()
	_ = WithRand(nil)
}

// TestGapOptions verifies last-wins semantics and the negative-gap panic.
func TestGapOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithMaxGap(3), WithMaxGap(0), WithBase(-5))
	if cfg.maxGap != 0 {
		t.Errorf("WithMaxGap override: expected 0, got %d", cfg.maxGap)
	}
	if cfg.base != -5 {
		t.Errorf("WithBase: expected -5, got %d", cfg.base)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("WithMaxGap(-1): expected panic")
		}
	}()
	_ = WithMaxGap(-1)
}

func TestFits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		start, step int64
		n           int
		want        bool
	}{
		{0, 1, 0, true},
		{1 << 62, 1 << 62, 2, false},
		{1 << 62, (1 << 62) - 1, 2, true},
		{-1 << 63, 1 << 62, 5, false},
		{-1 << 63, 1 << 62, 4, true},
		{0, 1 << 40, 1 << 30, false},
	}
	for _, tc := range cases {
		if got := fits(tc.start, tc.step, tc.n); got != tc.want {
			t.Errorf("fits(%d, %d, %d) = %v, want %v", tc.start, tc.step, tc.n, got, tc.want)
		}
	}
}
