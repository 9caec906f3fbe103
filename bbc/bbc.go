package bbc

import (
	"math"
	"sort"

	"github.com/wcwatson/iceberg/core"
)

// Estimate — Boneh-Boneh-Caron population size estimator.
//
// Description:
//
//	Entities observed only a few times hint at entities observed zero
//	times. BBC forms a deliberately biased estimate of the unobserved
//	count from the frequency spectrum, then removes the bias with a
//	damped fixed-point iteration anchored on the singleton count.
//
// Algorithm Outline:
//  1. Build the frequency spectrum of set; let n = distinct entities
//     observed, f1 = number of singletons.
//  2. If f1 == 0, return ErrNoSingletons.
//  3. Biased estimate of the unobserved count:
//     B = Σ_f spectrum[f] · e^(−f)
//  4. Fixed-point correction from prev = B:
//     next = B + prev · e^(−f1/prev)
//     until |next − prev| ≤ opts.Tolerance, at most opts.MaxIterations
//     steps; exceeding the cap returns ErrNoConvergence.
//  5. Return n + ⌈corrected⌉.
//
// Frequencies are summed in ascending order so the estimate is
// bit-stable across runs.
//
// Complexity:
//
//	Time   = O(total incidences) spectrum build + O(iterations) correction
//	Memory = O(distinct entities)
//
// Errors:
//   - ErrNoSingletons  — no entity observed exactly once (empty set included).
//   - ErrNoConvergence — correction exceeded MaxIterations.
//   - ErrBadTolerance  — Tolerance not finite and positive.
//   - ErrBadIterations — MaxIterations not positive.
func Estimate[E comparable](set core.SampleSet[E], opts Options) (int, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}

	spectrum := core.SpectrumOf(set)
	observed := spectrum.Entities()
	singletons := spectrum.Singletons()
	if singletons == 0 {
		return 0, ErrNoSingletons
	}

	// Each frequency class contributes its entity count discounted by
	// e^(−frequency); low frequencies dominate. Sorted keys keep the
	// floating-point sum deterministic.
	freqs := make([]int, 0, len(spectrum))
	for freq := range spectrum {
		freqs = append(freqs, freq)
	}
	sort.Ints(freqs)

	var biased float64
	for _, freq := range freqs {
		biased += float64(spectrum[freq]) * math.Exp(-float64(freq))
	}

	// Damped fixed-point correction anchored on the singleton count.
	// B < f1 always converges; B ≥ f1 drifts upward by ~B−f1 per step
	// and is cut off by the iteration cap.
	f1 := float64(singletons)
	corrected := biased
	for i := 0; i < opts.MaxIterations; i++ {
		next := biased + corrected*math.Exp(-f1/corrected)
		if math.Abs(next-corrected) <= opts.Tolerance {
			return observed + int(math.Ceil(next)), nil
		}
		corrected = next
	}

	return 0, ErrNoConvergence
}
