package cuthbert

import "math"

// EstimateError — signed discrepancy of a candidate population size.
//
// Description:
//
//	Under sampling without replacement from a population of size
//	candidate, an entity misses one sample of size s with probability
//	(candidate−s)/candidate. Treating misses across samples as
//	independent, the expected number of entities absent from every
//	sample is
//
//	  candidate · Π_s (candidate−s)/candidate
//
//	while the candidate itself implies a deficit of candidate−observed
//	never-observed entities. EstimateError returns expectation minus
//	implied deficit: positive while the candidate is too small to
//	explain the observations, negative or zero once it is large enough.
//	It is non-increasing on [observed, ∞), strictly so once two or more
//	samples are present, which is what the bisection in Uncorrected
//	relies on. A single sample carries no recapture signal and yields a
//	constant.
//
// The product is evaluated in log space, so very large candidates neither
// underflow the per-sample factors nor overflow the expectation.
//
// Per-sample independence is a modeling approximation: one entity's
// absences from different samples are weakly coupled through the fixed
// population, and no accuracy bound is claimed for the approximation.
//
// Domain: 0 ≤ sizes[i] ≤ observed ≤ candidate. Outside it the result may
// be NaN (logarithm of a negative number); Uncorrected validates inputs
// before calling.
//
// Complexity: O(len(sizes)).
func EstimateError(candidate, observed int, sizes []int) float64 {
	logExpectation := math.Log(float64(candidate))
	for _, size := range sizes {
		logExpectation += math.Log(float64(candidate-size)) - math.Log(float64(candidate))
	}

	return math.Exp(logExpectation) - float64(candidate-observed)
}
