package artifact

import (
	"fmt"

	"examscore/business/prediction"
)

// LinearModel is the exported regression model: one weight per feature
// plus an intercept. The core treats it as an opaque predict capability.
type LinearModel struct {
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

func (m *LinearModel) validate() error {
	if len(m.Weights) != prediction.FeatureDim {
		return fmt.Errorf("model dimension mismatch: weights=%d want %d",
			len(m.Weights), prediction.FeatureDim)
	}
	return nil
}

// Predict runs inference on an already-scaled feature vector and
// returns the raw, unclamped output.
func (m *LinearModel) Predict(x prediction.FeatureVector) float64 {
	sum := m.Intercept
	for i := range x {
		sum += m.Weights[i] * x[i]
	}
	return sum
}
