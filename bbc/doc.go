// Package bbc estimates total population size from repeated samples
// taken without replacement, using the bias-corrected estimator of
// Boneh, Boneh & Caron (1998).
//
// 🚀 What does it do?
//
//	Given several samples of a closed population, BBC predicts how many
//	entities were never observed at all.  It reads the frequency spectrum
//	(how many entities appeared exactly once, twice, ...) and extrapolates
//	the unseen mass from it.  Typical uses:
//	  • species richness from field surveys
//	  • vocabulary size from text corpora
//	  • lost works of a repertory from surviving manuscript copies
//	  • distinct-value ("iceberg") estimation over partial scans
//
// ✨ Key features:
//   - single call: Estimate(set, opts) — spectrum building included
//   - damped fixed-point bias correction with configurable tolerance
//   - bounded iteration: divergent spectra return ErrNoConvergence
//     instead of spinning
//   - no randomness, no logging, no side effects
//
// ⚙️ Usage:
//
//	import "github.com/wcwatson/iceberg/bbc"
//
//	set := core.SampleSet[string]{
//	  {"kyrie", "gloria", "credo"},
//	  {"kyrie", "sanctus"},
//	}
//	size, err := bbc.Estimate(set, bbc.DefaultOptions())
//	if err != nil {
//	  // ErrNoSingletons: every entity was seen 2+ times, the
//	  // estimator has nothing to extrapolate from.
//	}
//
// Performance:
//
//   - Time:   O(N) spectrum build + O(k) per correction step,
//     k = distinct frequencies (usually tiny)
//   - Memory: O(distinct entities)
//
// The estimate is a lower-bound-respecting integer: it is always at least
// the number of distinct entities actually observed.
package bbc
