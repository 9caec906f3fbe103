// Package iceberg estimates the size of an unknown population from a
// collection of samples drawn without replacement. It answers the
// capture-recapture question: how much of the iceberg sits below the
// waterline?
//
// Given overlapping samples of an unknown population, iceberg offers two
// independent estimators:
//
//   - BBC, the Boneh-Boneh-Caron bias-corrected frequency estimator.
//     Profiles how often each entity was observed, derives a first-order
//     biased count of unobserved entities, then removes the bias with a
//     damped fixed-point iteration.
//
//   - Cuthbert, a search-based deficit estimator. For each candidate
//     population size it compares the expected number of never-observed
//     entities under a without-replacement sampling model against the
//     observed deficit, and bisects to the candidate where the two agree.
//     Optionally refines the estimate with bootstrap cross-validation:
//     repeated holdout/resimulate trials against the hypothesized
//     population.
//
// Everything is organized under four subpackages:
//
//	core/     - SampleSet, frequency Profile and Spectrum primitives
//	bbc/      - the BBC estimator
//	cuthbert/ - the Cuthbert estimator and bootstrap corrector
//	simulate/ - synthetic populations, sampling plans, canned studies
//
// Quick sketch:
//
//	samples := core.SampleSet[string]{
//	  {"kyrie-I", "gloria-II", "credo-I"},
//	  {"kyrie-I", "sanctus-IV"},
//	  {"gloria-II", "agnus-III"},
//	}
//
//	n, err := bbc.Estimate(samples, bbc.DefaultOptions())       // one number
//	res, err := cuthbert.Estimate(samples, cuthbert.DefaultOptions())
//	// res.Uncorrected, res.Corrected (one entry per bootstrap trial)
//
// All estimation is pure, in-memory computation: no I/O, no global state,
// no hidden randomness. Bootstrap trials take an explicit seed (or an
// injected *rand.Rand) and reproduce bit-for-bit, sequentially or in
// parallel.
//
// Runnable study drivers live in examples/; see simulate/ for the
// population generators they build on.
package iceberg
