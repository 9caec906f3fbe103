// Package cuthbert_test provides lightweight fixtures shared across the
// *_test.go files in this package.
package cuthbert_test

import "github.com/wcwatson/iceberg/core"

const (
	// seedDet is the deterministic seed used by reproducibility tests.
	seedDet = int64(42)

	// trialsSmall is the bootstrap depth for correctness tests: enough to
	// exercise scheduling, small enough to stay fast.
	trialsSmall = 32
)

// identicalPlusOne builds nSamples identical samples [0..sampleSize) with
// one extra entity appended to the first sample. The first sample covers
// every observed entity, so the deficit search floor-saturates.
func identicalPlusOne(nSamples, sampleSize int) core.SampleSet[int] {
	set := make(core.SampleSet[int], nSamples)
	for i := range set {
		sample := make([]int, sampleSize)
		for j := range sample {
			sample[j] = j
		}
		set[i] = sample
	}
	set[0] = append(set[0], sampleSize)

	return set
}

// disjointPlusRepeat builds nSamples pairwise-disjoint samples of
// sampleSize entities and appends entity 0 to the last sample, so the
// search has exactly one recapture to work with.
func disjointPlusRepeat(nSamples, sampleSize int) core.SampleSet[int] {
	set := make(core.SampleSet[int], nSamples)
	next := 0
	for i := range set {
		sample := make([]int, sampleSize)
		for j := range sample {
			sample[j] = next
			next++
		}
		set[i] = sample
	}
	set[nSamples-1] = append(set[nSamples-1], 0)

	return set
}

// chantSet is a small two-witness overlap fixture: six distinct entities,
// three shared. The deficit root sits strictly between 6 and 7.
func chantSet() core.SampleSet[string] {
	return core.SampleSet[string]{
		{"kyrie", "gloria", "credo", "sanctus", "agnus"},
		{"credo", "sanctus", "agnus", "dies"},
	}
}
