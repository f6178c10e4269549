package prediction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Boundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{100, "EXCELLENT"},
		{85.0, "EXCELLENT"},
		{84.999, "GOOD"},
		{70.0, "GOOD"},
		{69.999, "AVERAGE"},
		{50.0, "AVERAGE"},
		{49.999, "NEEDS IMPROVEMENT"},
		{0, "NEEDS IMPROVEMENT"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.score).Label, "score %v", tc.score)
	}
}

func TestClassify_OutOfRangeInput(t *testing.T) {
	// Scores are pre-clamped in practice, but the classifier still
	// treats out-of-range input as its nearest in-range class.
	assert.Equal(t, "NEEDS IMPROVEMENT", Classify(-3).Label)
	assert.Equal(t, "EXCELLENT", Classify(120).Label)
}

func TestClassify_BandColors(t *testing.T) {
	for _, b := range scoreBands {
		assert.NotEmpty(t, b.band.Color, b.band.Label)
	}
	assert.NotEmpty(t, bandNeedsImprovement.Color)
}
