package bsearch_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bisect/bsearch"
	"github.com/katalvlaran/bisect/builder"
)

// randomSorted draws a sorted fixture of random length with small gaps so
// that duplicates, holes and runs all show up.
func randomSorted(t *testing.T, r *rand.Rand) []int64 {
	t.Helper()
	s, err := builder.RandomSorted(r.Intn(200),
		builder.WithRand(r),
		builder.WithBase(r.Int63n(2000)-1000),
		builder.WithMaxGap(r.Int63n(4)))
	require.NoError(t, err)

	return s
}

// TestProperty_PresentAndAbsent checks, over many random sorted sequences,
// that every present value is found at a matching index and every absent
// value in the surrounding range yields NotFound.
func TestProperty_PresentAndAbsent(t *testing.T) {
	r := rand.New(rand.NewSource(20240501)) // deterministic seed for reproducibility
	for round := 0; round < 300; round++ {
		s := randomSorted(t, r)
		present := make(map[int64]bool, len(s))
		for _, v := range s {
			present[v] = true
		}

		for _, v := range s {
			i := bsearch.Search(s, v)
			if assert.NotEqual(t, bsearch.NotFound, i, "round %d: %d not found", round, v) {
				assert.Equal(t, v, s[i], "round %d", round)
			}
		}

		lo, hi := int64(-1005), int64(1005)
		if len(s) > 0 {
			lo, hi = s[0]-3, s[len(s)-1]+3
		}
		for v := lo; v <= hi; v++ {
			if !present[v] {
				assert.Equal(t, bsearch.NotFound, bsearch.Search(s, v), "round %d: absent %d", round, v)
			}
		}
	}
}

// TestProperty_Idempotent checks that repeated calls keep satisfying the
// correctness property.
func TestProperty_Idempotent(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		s := randomSorted(t, r)
		if len(s) == 0 {
			continue
		}
		v := s[r.Intn(len(s))]
		for k := 0; k < 5; k++ {
			i := bsearch.Search(s, v)
			require.NotEqual(t, bsearch.NotFound, i)
			assert.Equal(t, v, s[i])
		}
	}
}

// TestProperty_Boundaries checks first/last element on strictly increasing input.
func TestProperty_Boundaries(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for round := 0; round < 100; round++ {
		n := 1 + r.Intn(500)
		s, err := builder.Ramp(n, r.Int63n(100)-50, 1+r.Int63n(9))
		require.NoError(t, err)
		assert.Equal(t, 0, bsearch.Search(s, s[0]))
		assert.Equal(t, n-1, bsearch.Search(s, s[n-1]))
	}
}

// TestProperty_EmptyAlwaysNotFound checks that the empty sequence never matches.
func TestProperty_EmptyAlwaysNotFound(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for k := 0; k < 100; k++ {
		assert.Equal(t, bsearch.NotFound, bsearch.Search([]int64{}, r.Int63()-r.Int63()))
	}
}
