// Package cuthbert estimates total population size from samples taken
// without replacement, using the deficit-search method of Cuthbert (2009)
// with optional bootstrap cross-validation.
//
// 🚀 What does it do?
//
//	For a candidate population size c, a without-replacement sampling
//	model predicts how many entities should have escaped every sample.
//	Comparing that prediction with the deficit actually implied by c
//	yields a signed error, decreasing in c.  The estimator bisects for
//	the sign change; an optional bootstrap stage replays
//	holdout splits against the hypothesized population and scales the
//	estimate by how badly the simulation undershoots reality.
//
// ✨ Key features:
//   - log-space error function: no underflow for huge candidate sizes
//   - iterative bisection, O(log max) error evaluations, no recursion
//   - boundary saturation by design: floor/ceiling hits return the
//     boundary, never an error
//   - bootstrap trials with per-trial derived seeds: bit-for-bit
//     identical results sequentially or in parallel
//   - injectable randomness (Seed or *rand.Rand), never global state
//
// ⚙️ Usage:
//
//	import "github.com/wcwatson/iceberg/cuthbert"
//
//	opts := cuthbert.DefaultOptions()
//	opts.Trials = 100        // bootstrap iterations
//	opts.Seed = 42           // reproducible splits
//	opts.Parallelism = 4     // bounded fan-out
//
//	res, err := cuthbert.Estimate(set, opts)
//	if err != nil {
//	  // invalid configuration or impossible sample shape
//	}
//	fmt.Println(res.Uncorrected, res.CorrectedMedian())
//
// Performance:
//
//   - Uncorrected: O(S·log(n/MinSurvival)) where S = number of samples
//   - Bootstrap:   O(Trials · total incidences), embarrassingly parallel
//
// Both estimates respect the observed lower bound: they are never below
// the number of distinct entities actually seen.
package cuthbert
