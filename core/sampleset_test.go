package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wcwatson/iceberg/core"
)

// TestSampleSet_Sizes verifies raw per-sample lengths in sample order,
// repeats included.
func TestSampleSet_Sizes(t *testing.T) {
	set := core.SampleSet[string]{
		{"a", "b", "b"},
		{},
		{"c"},
	}

	assert.Equal(t, []int{3, 0, 1}, set.Sizes())
	assert.Empty(t, core.SampleSet[string]{}.Sizes())
}

// TestSampleSet_Entities verifies distinct entities in first-appearance
// order, scanning samples front to back.
func TestSampleSet_Entities(t *testing.T) {
	set := core.SampleSet[string]{
		{"b", "a", "b"},
		{"c", "a"},
		{"d"},
	}

	assert.Equal(t, []string{"b", "a", "c", "d"}, set.Entities())
}

// TestSampleSet_EntitiesEmpty verifies the degenerate cases.
func TestSampleSet_EntitiesEmpty(t *testing.T) {
	assert.Empty(t, core.SampleSet[int]{}.Entities())
	assert.Empty(t, core.SampleSet[int]{{}, {}}.Entities())
}
