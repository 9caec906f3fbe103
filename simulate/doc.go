// Package simulate builds synthetic sample sets with known ground truth
// and packages canned estimation studies around them.
//
// 🚀 What is it for?
//
//	The estimators in bbc and cuthbert are easiest to judge against
//	populations whose true size is known. This package simulates such
//	populations: deterministic degenerate shapes (identical samples,
//	all-unique samples) that exercise the estimators' edge behavior, and
//	seeded random draws from an integer-labeled population for
//	end-to-end accuracy studies.
//
// ✨ Key features:
//   - Plan: tagged sampling plan, Uniform(count, size) or
//     Explicit(sizes...), resolved to a canonical size sequence once
//   - Draw: without-replacement sampling from an integer population,
//     deterministic under a caller-supplied RNG
//   - canned studies returning a Report per run: observed count, BBC
//     estimate (failure reported in-band) and the Cuthbert result
//
// ⚙️ Usage:
//
//	import "github.com/wcwatson/iceberg/simulate"
//
//	report, err := simulate.Random(1000, simulate.Uniform(20, 20),
//	  simulate.RandomOptions{Seed: 42})
//	if err != nil {
//	  // invalid plan or population too small
//	}
//	fmt.Println(report.Observed, report.BBC, report.Cuthbert.Uncorrected)
//
// Randomness policy: explicit Seed or injected *rand.Rand, never global
// state; Seed 0 selects a fixed default stream, so every study is
// reproducible out of the box.
package simulate
