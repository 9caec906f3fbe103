// Package core provides the sample primitives shared by every iceberg
// estimator: sample sets, frequency profiles, and frequency spectra.
//
// What:
//
//   - SampleSet[E] holds an ordered sequence of samples, each a collection
//     of opaque comparable entities drawn without replacement.
//   - NewProfile counts, per entity, how many samples contain it.
//   - Profile.Spectrum (and the SpectrumOf shortcut) folds a profile into a
//     "frequency of frequencies": how many entities were seen exactly once,
//     exactly twice, and so forth.
//
// Why:
//
//   - Capture-recapture estimators consume observation frequencies, not raw
//     samples; both the BBC singleton count and the Cuthbert deficit derive
//     from these primitives.
//   - Entities stay caller-defined (any comparable type: strings, ints,
//     composite keys); the estimators never inspect them.
//
// Conventions:
//
//   - Sample order and entity order never affect counts, but Entities()
//     returns the distinct entities in first-appearance order so that any
//     downstream randomized procedure seeded identically replays
//     identically.
//   - Duplicates inside a single sample are not modeled: an entity either
//     is or is not in a sample, so profiling deduplicates per sample.
//
// Complexity:
//
//   - NewProfile / SpectrumOf / Entities: O(total incidences), Memory O(V)
//     where V is the number of distinct entities.
//
// The package is allocation-light, side-effect free, and never fails: an
// empty SampleSet simply yields empty derivatives.
package core
