package core

// SampleSet is an ordered sequence of samples, each sample a collection of
// entities observed together. Samples are assumed drawn without replacement
// from one fixed population; within a sample an entity either occurs or
// does not (repeats carry no extra information and are ignored by
// profiling).
//
// The element type E is an opaque identifier; any comparable type works.
// A SampleSet is plain data: estimators never mutate it.
type SampleSet[E comparable] [][]E

// Sizes returns the length of every sample, preserving sample order.
// Repeated entities inside a sample count toward its size; callers that
// need deduplicated sizes should profile instead.
//
// Complexity: O(len(s)) time, O(len(s)) space.
func (s SampleSet[E]) Sizes() []int {
	sizes := make([]int, len(s))
	for i, sample := range s {
		sizes[i] = len(sample)
	}

	return sizes
}

// Entities returns the distinct entities across all samples in
// first-appearance order: samples are scanned in sequence and each entity
// is emitted the first time it is seen. The ordering is deterministic for
// a given SampleSet, which is what makes seeded bootstrap trials replay
// bit-for-bit.
//
// Complexity: O(total incidences) time, O(V) space.
func (s SampleSet[E]) Entities() []E {
	seen := make(map[E]struct{})
	order := make([]E, 0)
	for _, sample := range s {
		for _, entity := range sample {
			if _, ok := seen[entity]; ok {
				continue
			}
			seen[entity] = struct{}{}
			order = append(order, entity)
		}
	}

	return order
}
