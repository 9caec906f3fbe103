package cuthbert_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcwatson/iceberg/cuthbert"
)

// TestUncorrected_FloorSaturation verifies that a sample covering every
// observed entity pins the estimate to the observed count: the floor
// already explains the deficit.
func TestUncorrected_FloorSaturation(t *testing.T) {
	set := identicalPlusOne(10, 10)
	observed := len(set.Entities())

	got, err := cuthbert.Uncorrected(observed, set.Sizes(), cuthbert.DefaultMinSurvival)
	require.NoError(t, err)
	assert.Equal(t, observed, got)
	assert.Equal(t, 11, got)
}

// TestUncorrected_CeilingSaturation verifies that two disjoint singleton
// samples (error is 1/c, positive everywhere) saturate at the search
// ceiling ⌈observed/minSurvival⌉.
func TestUncorrected_CeilingSaturation(t *testing.T) {
	got, err := cuthbert.Uncorrected(2, []int{1, 1}, cuthbert.DefaultMinSurvival)
	require.NoError(t, err)
	assert.Equal(t, 200, got)
}

// TestUncorrected_KnownRepertory pins the estimate for ten disjoint
// ten-entity samples with a single repeat observation: one recapture in a
// hundred observations implies a population near 4.6k.
func TestUncorrected_KnownRepertory(t *testing.T) {
	set := disjointPlusRepeat(10, 10)
	observed := len(set.Entities())
	require.Equal(t, 100, observed)

	got, err := cuthbert.Uncorrected(observed, set.Sizes(), cuthbert.DefaultMinSurvival)
	require.NoError(t, err)
	assert.Equal(t, 4564, got)
}

// TestUncorrected_SmallOverlap verifies the two-witness fixture: the error
// is 20/c − 3, the root sits between 6 and 7, bisection rounds up.
func TestUncorrected_SmallOverlap(t *testing.T) {
	set := chantSet()

	got, err := cuthbert.Uncorrected(len(set.Entities()), set.Sizes(), cuthbert.DefaultMinSurvival)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

// TestUncorrected_EmptyInput verifies the empty sample set is valid and
// resolves to zero without special-casing.
func TestUncorrected_EmptyInput(t *testing.T) {
	got, err := cuthbert.Uncorrected(0, nil, cuthbert.DefaultMinSurvival)
	require.NoError(t, err)
	assert.Zero(t, got)
}

// TestUncorrected_BisectionCorrectness property-tests the search result
// u over randomized inputs: error(u−1) > 0 unless u saturated the floor,
// error(u) ≤ 0 unless u saturated the ceiling, and u stays within
// [observed, maxSize].
func TestUncorrected_BisectionCorrectness(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))

	for trial := 0; trial < 100; trial++ {
		nSamples := 2 + rng.Intn(10)
		sizes := make([]int, nSamples)
		largest := 0
		for i := range sizes {
			sizes[i] = 1 + rng.Intn(60)
			if sizes[i] > largest {
				largest = sizes[i]
			}
		}
		observed := largest + rng.Intn(3*largest)

		u, err := cuthbert.Uncorrected(observed, sizes, cuthbert.DefaultMinSurvival)
		require.NoError(t, err)

		maxSize := int(math.Ceil(float64(observed) / cuthbert.DefaultMinSurvival))
		assert.GreaterOrEqual(t, u, observed)
		assert.LessOrEqual(t, u, maxSize)

		if u != observed {
			assert.Greater(t, cuthbert.EstimateError(u-1, observed, sizes), 0.0,
				"no sign change below u=%d observed=%d sizes=%v", u, observed, sizes)
		}
		if u != maxSize {
			assert.LessOrEqual(t, cuthbert.EstimateError(u, observed, sizes), 0.0,
				"error still positive at u=%d observed=%d sizes=%v", u, observed, sizes)
		}
	}
}

// TestUncorrected_Validation verifies fail-fast sentinels for impossible
// shapes and out-of-range survival rates.
func TestUncorrected_Validation(t *testing.T) {
	_, err := cuthbert.Uncorrected(-1, nil, cuthbert.DefaultMinSurvival)
	assert.ErrorIs(t, err, cuthbert.ErrBadObserved)

	_, err = cuthbert.Uncorrected(3, []int{2, 0}, cuthbert.DefaultMinSurvival)
	assert.ErrorIs(t, err, cuthbert.ErrSampleSize)

	_, err = cuthbert.Uncorrected(2, []int{3}, cuthbert.DefaultMinSurvival)
	assert.ErrorIs(t, err, cuthbert.ErrSampleExceedsObserved)

	for _, rate := range []float64{0, -0.5, 1.5, math.NaN()} {
		_, err = cuthbert.Uncorrected(3, []int{2}, rate)
		assert.ErrorIs(t, err, cuthbert.ErrBadSurvival, "rate=%v", rate)
	}
}
