package simulate

import (
	"github.com/wcwatson/iceberg/bbc"
	"github.com/wcwatson/iceberg/core"
	"github.com/wcwatson/iceberg/cuthbert"
)

// runBBC folds the estimator's data-dependent failure into the report.
func runBBC(set core.SampleSet[int], report *Report) {
	report.BBC, report.BBCErr = bbc.Estimate(set, bbc.DefaultOptions())
}

// IdenticalSamplesSaveOne studies the worst case for both estimators:
// every sample repeats the same sampleSize entities, and a single extra
// entity appears once in the first sample.
//
// The BBC estimate is computed from the spectrum as usual. The
// capture-recapture estimate is analytic here: fully overlapping
// samples carry no recapture signal beyond the shared inventory, so the
// report fixes Uncorrected to sampleSize without running the search.
//
// IdenticalSamplesSaveOne(10, 10) observes 11 entities, estimates 12 by
// BBC and 10 by capture-recapture.
func IdenticalSamplesSaveOne(nSamples, sampleSize int) (Report, error) {
	if nSamples < 2 {
		return Report{}, ErrTooFewSamples
	}
	if sampleSize < 1 {
		return Report{}, ErrBadPlan
	}

	set := make(core.SampleSet[int], nSamples)
	for s := range set {
		sample := make([]int, sampleSize)
		for i := range sample {
			sample[i] = i
		}
		set[s] = sample
	}
	set[0] = append(set[0], sampleSize)

	report := Report{
		Observed: sampleSize + 1,
		Cuthbert: cuthbert.Result{Uncorrected: sampleSize},
	}
	runBBC(set, &report)
	return report, nil
}

// UniqueEntities studies the opposite extreme: nSamples pairwise
// disjoint samples of sampleSize entities each. BBC sees a pure
// singleton spectrum; the capture-recapture search then runs on the
// same set with one entity repeated (the first entity re-appended to
// the last sample), since a set with zero overlap pins no finite
// estimate below the ceiling.
//
// UniqueEntities(10, 10) observes 100 entities, estimates 141 by BBC
// and 4564 by capture-recapture.
func UniqueEntities(nSamples, sampleSize int) (Report, error) {
	if nSamples < 2 {
		return Report{}, ErrTooFewSamples
	}
	if sampleSize < 1 {
		return Report{}, ErrBadPlan
	}

	set := make(core.SampleSet[int], nSamples)
	for s := range set {
		sample := make([]int, sampleSize)
		for i := range sample {
			sample[i] = s*sampleSize + i
		}
		set[s] = sample
	}

	var report Report
	runBBC(set, &report)

	set[nSamples-1] = append(set[nSamples-1], 0)
	report.Observed = len(set.Entities())

	result, err := cuthbert.Estimate(set, cuthbert.DefaultOptions())
	if err != nil {
		return Report{}, err
	}
	report.Cuthbert = result
	return report, nil
}

// Random draws the plan from a population of popSize integer-labeled
// entities and runs both estimators on the result. Sampling is
// reproducible: a fixed Seed (or injected Rand) yields the same sample
// set, and therefore the same report, on every run.
func Random(popSize int, plan Plan, opts RandomOptions) (Report, error) {
	rng := opts.Rand
	if rng == nil {
		rng = rngFromSeed(opts.Seed)
	}

	set, err := Draw(popSize, plan, rng)
	if err != nil {
		return Report{}, err
	}

	copts := opts.Cuthbert
	if copts == (cuthbert.Options{}) {
		copts = cuthbert.DefaultOptions()
	}

	report := Report{Observed: len(set.Entities())}
	runBBC(set, &report)

	result, err := cuthbert.Estimate(set, copts)
	if err != nil {
		return Report{}, err
	}
	report.Cuthbert = result
	return report, nil
}
