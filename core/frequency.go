package core

// Profile maps each observed entity to the number of samples containing it.
// Every count is ≥ 1; the domain is exactly the union of entities across
// the profiled SampleSet.
type Profile[E comparable] map[E]int

// Spectrum maps an observation frequency to the number of entities observed
// exactly that many times. Two invariants hold for any spectrum derived
// from a Profile:
//
//	Σ values            == number of distinct observed entities
//	Σ frequency · value == total entity-sample incidences
type Spectrum map[int]int

// NewProfile counts, for every entity, how many samples contain it.
// Repeats of an entity within one sample are collapsed to a single
// occurrence. An empty set yields an empty (non-nil) profile.
//
// Complexity: O(total incidences) time, O(V) space.
func NewProfile[E comparable](set SampleSet[E]) Profile[E] {
	profile := make(Profile[E])
	for _, sample := range set {
		if len(sample) == 0 {
			continue
		}
		// Collapse within-sample repeats before counting.
		inSample := make(map[E]struct{}, len(sample))
		for _, entity := range sample {
			if _, ok := inSample[entity]; ok {
				continue
			}
			inSample[entity] = struct{}{}
			profile[entity]++
		}
	}

	return profile
}

// Spectrum folds the profile into its frequency-of-frequencies form.
//
// Complexity: O(V) time, O(F) space, F = number of distinct frequencies.
func (p Profile[E]) Spectrum() Spectrum {
	spectrum := make(Spectrum)
	for _, count := range p {
		spectrum[count]++
	}

	return spectrum
}

// SpectrumOf profiles set and returns the resulting frequency spectrum in
// one step. An empty set yields an empty spectrum; there are no failure
// modes.
//
// Complexity: O(total incidences) time, O(V) space.
func SpectrumOf[E comparable](set SampleSet[E]) Spectrum {
	return NewProfile(set).Spectrum()
}

// Entities returns the number of distinct observed entities (Σ values).
//
// Complexity: O(F).
func (sp Spectrum) Entities() int {
	total := 0
	for _, entities := range sp {
		total += entities
	}

	return total
}

// Incidences returns the total number of entity-sample incidences
// (Σ frequency · value).
//
// Complexity: O(F).
func (sp Spectrum) Incidences() int {
	total := 0
	for frequency, entities := range sp {
		total += frequency * entities
	}

	return total
}

// Singletons returns the number of entities observed in exactly one sample,
// zero when there are none.
//
// Complexity: O(1).
func (sp Spectrum) Singletons() int {
	return sp[1]
}
