package cuthbert

import "math"

// Uncorrected — deficit-search estimate of population size.
//
// Description:
//
//	Bisects EstimateError over the admissible domain for the candidate
//	size at which the sign flips: the smallest population that explains
//	the observed deficit under the sampling model.
//
// Algorithm Outline:
//  1. maxSize = ⌈observed/minSurvival⌉ caps the search: a true population
//     above it would imply a survival rate below the admissible floor.
//  2. Ceiling saturation: if EstimateError(maxSize) > 0 the root lies
//     beyond the cap; return maxSize.
//  3. Floor saturation: if EstimateError(observed) ≤ 0 the observed count
//     already explains the deficit; return observed.
//  4. Bisect with the invariant error(lower) > 0 ∧ error(upper) ≤ 0:
//     mid = lower + ⌈(upper−lower)/2⌉, move the matching bound, stop at
//     upper−lower ≤ 1 and return upper (round toward non-positive error).
//
// Saturation (steps 2 and 3) is expected behavior, not a failure: the
// estimator degrades to the boundary value. The loop is iterative and
// performs O(log maxSize) error evaluations regardless of domain size.
//
// Errors:
//   - ErrBadObserved           — observed < 0.
//   - ErrSampleSize            — a sample size ≤ 0.
//   - ErrSampleExceedsObserved — a sample size > observed.
//   - ErrBadSurvival           — minSurvival outside (0, 1].
func Uncorrected(observed int, sizes []int, minSurvival float64) (int, error) {
	if err := validateShape(observed, sizes); err != nil {
		return 0, err
	}
	if minSurvival <= 0 || minSurvival > 1 || math.IsNaN(minSurvival) {
		return 0, ErrBadSurvival
	}

	maxSize := int(math.Ceil(float64(observed) / minSurvival))

	if EstimateError(maxSize, observed, sizes) > 0 {
		return maxSize, nil
	}
	if EstimateError(observed, observed, sizes) <= 0 {
		return observed, nil
	}

	lower, upper := observed, maxSize
	for upper-lower > 1 {
		mid := lower + (upper-lower+1)/2
		if EstimateError(mid, observed, sizes) > 0 {
			lower = mid
		} else {
			upper = mid
		}
	}

	return upper, nil
}

// validateShape rejects impossible sample shapes before any numeric work.
func validateShape(observed int, sizes []int) error {
	if observed < 0 {
		return ErrBadObserved
	}
	for _, size := range sizes {
		if size <= 0 {
			return ErrSampleSize
		}
		if size > observed {
			return ErrSampleExceedsObserved
		}
	}

	return nil
}
