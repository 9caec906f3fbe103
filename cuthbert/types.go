// Package cuthbert defines configuration options, sentinel errors and the
// result record for the deficit-search population estimator.
package cuthbert

import (
	"errors"
	"math"
	"math/rand"
	"sort"
)

var (
	// ErrBadSurvival indicates Options.MinSurvival is outside (0, 1].
	ErrBadSurvival = errors.New("cuthbert: min survival rate must be in (0, 1]")

	// ErrBadHoldout indicates Options.HoldoutFraction is outside (0, 1].
	ErrBadHoldout = errors.New("cuthbert: holdout fraction must be in (0, 1]")

	// ErrBadTrials indicates a negative Options.Trials.
	ErrBadTrials = errors.New("cuthbert: trial count must be >= 0")

	// ErrBadParallelism indicates a negative Options.Parallelism.
	ErrBadParallelism = errors.New("cuthbert: parallelism must be >= 0")

	// ErrBadObserved indicates a negative observed-entity count.
	ErrBadObserved = errors.New("cuthbert: observed entity count must be >= 0")

	// ErrSampleSize indicates a sample of non-positive size.
	ErrSampleSize = errors.New("cuthbert: sample sizes must be > 0")

	// ErrSampleExceedsObserved indicates a sample larger than the number of
	// distinct entities observed, which cannot happen when samples are
	// drawn without replacement.
	ErrSampleExceedsObserved = errors.New("cuthbert: sample size exceeds observed entity count")

	// ErrEstimateBelowObserved indicates CrossValidate was given an
	// uncorrected estimate smaller than the observed entity count.
	ErrEstimateBelowObserved = errors.New("cuthbert: estimate below observed entity count")
)

const (
	// DefaultMinSurvival is the survival-rate floor used by DefaultOptions.
	// It caps the search at 100x the observed entity count.
	DefaultMinSurvival = 0.01

	// DefaultHoldoutFraction is the share of samples held out per
	// bootstrap trial, as used by DefaultOptions.
	DefaultHoldoutFraction = 0.2
)

// Options configures Estimate and CrossValidate.
//
// Fields:
//   - MinSurvival     — smallest admissible survival rate; the search
//     ceiling is ⌈observed/MinSurvival⌉. Must be in (0, 1].
//   - Trials          — number of bootstrap cross-validation trials;
//     0 skips the bootstrap stage entirely. Must be >= 0.
//   - HoldoutFraction — share of samples held out per trial, in (0, 1].
//     Only consulted when Trials > 0.
//   - Seed            — base seed for per-trial randomness; 0 selects a
//     fixed default seed. Ignored when Rand is non-nil.
//   - Rand            — optional entropy parent. When set, it is consumed
//     once per trial during setup; per-trial streams are derived from it.
//     Not used concurrently.
//   - Parallelism     — maximum concurrent trials; 0 or 1 runs trials
//     sequentially. Must be >= 0. Results are identical either way.
//
// Use DefaultOptions() for standard settings.
type Options struct {
	MinSurvival     float64
	Trials          int
	HoldoutFraction float64
	Seed            int64
	Rand            *rand.Rand
	Parallelism     int
}

// DefaultOptions returns Options with standard settings:
//
//	– MinSurvival     = DefaultMinSurvival (0.01)
//	– Trials          = 0 (no bootstrap)
//	– HoldoutFraction = DefaultHoldoutFraction (0.2)
//	– Seed            = 0 (fixed default stream)
//	– Rand            = nil
//	– Parallelism     = 0 (sequential)
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		MinSurvival:     DefaultMinSurvival,
		HoldoutFraction: DefaultHoldoutFraction,
	}
}

// validate returns the first violated sentinel, or nil. Bootstrap-only
// fields are checked only when a bootstrap stage is requested.
func (o Options) validate() error {
	if o.MinSurvival <= 0 || o.MinSurvival > 1 || math.IsNaN(o.MinSurvival) {
		return ErrBadSurvival
	}
	if o.Trials < 0 {
		return ErrBadTrials
	}
	if o.Trials > 0 {
		if err := o.validateBootstrap(); err != nil {
			return err
		}
	}

	return nil
}

// validateBootstrap checks the fields consulted by CrossValidate.
func (o Options) validateBootstrap() error {
	if o.HoldoutFraction <= 0 || o.HoldoutFraction > 1 || math.IsNaN(o.HoldoutFraction) {
		return ErrBadHoldout
	}
	if o.Parallelism < 0 {
		return ErrBadParallelism
	}

	return nil
}

// Result holds both estimates produced by Estimate.
type Result struct {
	// Uncorrected is the deficit-search estimate of population size.
	Uncorrected int

	// Corrected holds one bootstrap-corrected estimate per trial;
	// nil when no trials were requested.
	Corrected []int
}

// CorrectedMean returns the mean of the corrected estimates, or 0 when no
// trials were run.
func (r Result) CorrectedMean() float64 {
	if len(r.Corrected) == 0 {
		return 0
	}

	sum := 0
	for _, est := range r.Corrected {
		sum += est
	}

	return float64(sum) / float64(len(r.Corrected))
}

// CorrectedMedian returns the median of the corrected estimates, or 0 when
// no trials were run. Even-length series return the midpoint of the two
// central values.
func (r Result) CorrectedMedian() float64 {
	n := len(r.Corrected)
	if n == 0 {
		return 0
	}

	sorted := make([]int, n)
	copy(sorted, r.Corrected)
	sort.Ints(sorted)

	if n%2 == 1 {
		return float64(sorted[n/2])
	}

	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}
