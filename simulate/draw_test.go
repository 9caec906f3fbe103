package simulate_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcwatson/iceberg/simulate"
)

func TestPlan_Sizes(t *testing.T) {
	assert.Equal(t, []int{7, 7, 7}, simulate.Uniform(3, 7).Sizes())
	assert.Equal(t, []int{2, 9}, simulate.Explicit(2, 9).Sizes())
	assert.Empty(t, simulate.Plan{}.Sizes())
	assert.Empty(t, simulate.Uniform(0, 5).Sizes())
}

func TestPlan_SizesIsACopy(t *testing.T) {
	backing := []int{3, 4}
	plan := simulate.Explicit(backing...)
	backing[0] = 99

	sizes := plan.Sizes()
	assert.Equal(t, []int{3, 4}, sizes)

	sizes[1] = 99
	assert.Equal(t, []int{3, 4}, plan.Sizes())
}

func TestDraw_PlanValidation(t *testing.T) {
	_, err := simulate.Draw(10, simulate.Uniform(-1, 5), nil)
	assert.ErrorIs(t, err, simulate.ErrBadPlan)

	_, err = simulate.Draw(10, simulate.Uniform(3, 0), nil)
	assert.ErrorIs(t, err, simulate.ErrBadPlan)

	_, err = simulate.Draw(10, simulate.Explicit(4, 0), nil)
	assert.ErrorIs(t, err, simulate.ErrBadPlan)
}

func TestDraw_PopulationTooSmall(t *testing.T) {
	_, err := simulate.Draw(3, simulate.Explicit(4), nil)
	assert.ErrorIs(t, err, simulate.ErrPopulationTooSmall)

	_, err = simulate.Draw(-1, simulate.Explicit(), nil)
	assert.ErrorIs(t, err, simulate.ErrPopulationTooSmall)
}

func TestDraw_EmptyPlan(t *testing.T) {
	set, err := simulate.Draw(10, simulate.Explicit(), nil)
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestDraw_ShapeAndRange(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	set, err := simulate.Draw(100, simulate.Explicit(5, 3, 8), rng)
	require.NoError(t, err)

	require.Equal(t, []int{5, 3, 8}, set.Sizes())
	for _, sample := range set {
		seen := make(map[int]struct{}, len(sample))
		for _, entity := range sample {
			assert.GreaterOrEqual(t, entity, 0)
			assert.Less(t, entity, 100)
			_, dup := seen[entity]
			assert.False(t, dup, "entity %d drawn twice within one sample", entity)
			seen[entity] = struct{}{}
		}
	}
}

func TestDraw_FullCoverage(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	set, err := simulate.Draw(5, simulate.Explicit(5), rng)
	require.NoError(t, err)
	require.Len(t, set, 1)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, set[0])
}

func TestDraw_Determinism(t *testing.T) {
	first, err := simulate.Draw(50, simulate.Uniform(4, 10), rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	second, err := simulate.Draw(50, simulate.Uniform(4, 10), rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	third, err := simulate.Draw(50, simulate.Uniform(4, 10), rand.New(rand.NewSource(43)))
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestDraw_NilRNGUsesDefaultStream(t *testing.T) {
	first, err := simulate.Draw(50, simulate.Uniform(3, 5), nil)
	require.NoError(t, err)
	second, err := simulate.Draw(50, simulate.Uniform(3, 5), nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
