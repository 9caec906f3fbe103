package simulate

import (
	"math/rand"

	"github.com/wcwatson/iceberg/core"
)

// defaultRNGSeed keeps zero-configured draws reproducible across runs.
const defaultRNGSeed int64 = 1

// rngFromSeed builds the sampling stream for a study. Seed 0 falls back
// to the fixed default stream.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Draw samples the plan from an integer-labeled population without
// replacement. Entities are the labels 0..popSize-1; each sample is an
// independent uniform draw of its planned size.
//
// A nil rng selects the fixed default stream. Draw returns ErrBadPlan
// for non-positive sample sizes and ErrPopulationTooSmall when any
// sample would need more entities than the population holds.
func Draw(popSize int, plan Plan, rng *rand.Rand) (core.SampleSet[int], error) {
	if err := plan.validate(); err != nil {
		return nil, err
	}
	sizes := plan.Sizes()
	if popSize < 0 {
		return nil, ErrPopulationTooSmall
	}
	for _, size := range sizes {
		if size > popSize {
			return nil, ErrPopulationTooSmall
		}
	}
	if rng == nil {
		rng = rngFromSeed(defaultRNGSeed)
	}

	// One shared pool, partially re-shuffled per sample. A partial
	// Fisher-Yates pass yields a uniform without-replacement draw from
	// any starting permutation, so the pool never needs resetting.
	pool := make([]int, popSize)
	for i := range pool {
		pool[i] = i
	}

	set := make(core.SampleSet[int], len(sizes))
	for s, size := range sizes {
		for i := 0; i < size; i++ {
			j := i + rng.Intn(popSize-i)
			pool[i], pool[j] = pool[j], pool[i]
		}
		sample := make([]int, size)
		copy(sample, pool[:size])
		set[s] = sample
	}
	return set, nil
}
