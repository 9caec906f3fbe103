package cuthbert

import (
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/wcwatson/iceberg/core"
)

// CrossValidate — bootstrap correction of an uncorrected estimate.
//
// Description:
//
//	Hypothesize a population of exactly uncorrected entities: the
//	observed ones plus synthetic placeholders. Each trial holds out part
//	of the sample set, replays same-size random draws against the
//	hypothesized population, and compares how many "new" entities the
//	real holdout contributed versus the simulation. When the simulation
//	undershoots reality the unobserved component of the estimate is
//	scaled up proportionally.
//
// Per trial, with its own derived RNG:
//  1. Hold out ⌈HoldoutFraction·S⌉ of the S samples (index-based split,
//     so duplicate samples are held out independently).
//  2. For each held-out sample, draw an equal-size distinct subset of the
//     hypothesized population; union the draws.
//  3. trueNew = observed − |entities covered by retained samples|.
//  4. simNew = |drawn indices that are synthetic or not covered|.
//  5. factor = max(trueNew−simNew, 0) / max(simNew, 1).
//  6. trial result = observed + ⌈(uncorrected−observed)·(1+factor)⌉.
//
// The hypothesized population is indexed 0..uncorrected-1: index i below
// the observed count stands for the i-th distinct observed entity in
// first-appearance order, higher indices are placeholders that no real
// sample can contain. Nothing is materialized beyond the index space.
//
// Randomness: all per-trial RNGs are derived up front from opts.Seed or
// opts.Rand (one SplitMix64 stream per trial index), so the returned
// series is bit-for-bit identical for any Parallelism setting and across
// runs with the same seed.
//
// Returns one corrected estimate per trial; nil when opts.Trials == 0.
// An empty sample set is valid: every trial returns the observed count
// plus the full unobserved component, i.e. uncorrected itself.
//
// Errors:
//   - ErrBadTrials, ErrBadHoldout, ErrBadParallelism — configuration.
//   - ErrSampleSize, ErrSampleExceedsObserved — impossible sample shapes.
//   - ErrEstimateBelowObserved — uncorrected < distinct observed count.
//
// Complexity: O(Trials · total incidences), trials independent.
func CrossValidate[E comparable](set core.SampleSet[E], uncorrected int, opts Options) ([]int, error) {
	if opts.Trials < 0 {
		return nil, ErrBadTrials
	}
	if err := opts.validateBootstrap(); err != nil {
		return nil, err
	}

	entities := set.Entities()
	observed := len(entities)
	if err := validateShape(observed, set.Sizes()); err != nil {
		return nil, err
	}
	if uncorrected < observed {
		return nil, ErrEstimateBelowObserved
	}
	if opts.Trials == 0 {
		return nil, nil
	}

	rngs := trialRNGs(opts, opts.Trials)
	corrected := make([]int, opts.Trials)

	if opts.Parallelism > 1 {
		var group errgroup.Group
		group.SetLimit(opts.Parallelism)
		for t := 0; t < opts.Trials; t++ {
			group.Go(func() error {
				corrected[t] = bootstrapTrial(set, entities, uncorrected, opts.HoldoutFraction, rngs[t])

				return nil
			})
		}
		// Trials cannot fail; Wait only joins the workers.
		_ = group.Wait()
	} else {
		for t := 0; t < opts.Trials; t++ {
			corrected[t] = bootstrapTrial(set, entities, uncorrected, opts.HoldoutFraction, rngs[t])
		}
	}

	return corrected, nil
}

// bootstrapTrial runs one holdout/resimulate round. It reads set and
// entities only; rng is owned by this trial.
func bootstrapTrial[E comparable](
	set core.SampleSet[E], entities []E, uncorrected int, holdout float64, rng *rand.Rand,
) int {
	observed := len(entities)

	holdSize := int(math.Ceil(holdout * float64(len(set))))
	heldOut, retained := splitIndices(len(set), holdSize, rng)

	// Union of same-size draws from the hypothesized population.
	simulated := make(map[int]struct{})
	for _, s := range heldOut {
		for idx := range drawDistinct(uncorrected, len(set[s]), rng) {
			simulated[idx] = struct{}{}
		}
	}

	// Entities still covered after the holdout.
	kept := make(map[E]struct{})
	for _, s := range retained {
		for _, entity := range set[s] {
			kept[entity] = struct{}{}
		}
	}

	trueNew := observed - len(kept)

	simNew := 0
	for idx := range simulated {
		if idx >= observed {
			simNew++

			continue
		}
		if _, ok := kept[entities[idx]]; !ok {
			simNew++
		}
	}

	factor := float64(max(trueNew-simNew, 0)) / float64(max(simNew, 1))

	return observed + int(math.Ceil(float64(uncorrected-observed)*(1+factor)))
}
