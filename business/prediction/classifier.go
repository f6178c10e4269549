package prediction

import (
	"examscore/domain"
)

// Score bands partition [0, 100] into contiguous, non-overlapping
// ranges, checked highest threshold first.
var scoreBands = []struct {
	min  float64
	band domain.ScoreBand
}{
	{85, domain.ScoreBand{Label: "EXCELLENT", Color: "#4CAF50"}},
	{70, domain.ScoreBand{Label: "GOOD", Color: "#8BC34A"}},
	{50, domain.ScoreBand{Label: "AVERAGE", Color: "#FFC107"}},
}

var bandNeedsImprovement = domain.ScoreBand{Label: "NEEDS IMPROVEMENT", Color: "#F44336"}

// Classify maps a predicted score to its band. Scores arrive pre-clamped
// to [0, 100]; anything outside still lands on the nearest band, so the
// function is total over all reals.
func Classify(score float64) domain.ScoreBand {
	for _, b := range scoreBands {
		if score >= b.min {
			return b.band
		}
	}
	return bandNeedsImprovement
}
