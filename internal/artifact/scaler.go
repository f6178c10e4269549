package artifact

import (
	"fmt"

	"examscore/business/prediction"
)

// StandardScaler is the pre-fitted standardization transform exported
// alongside the model: per-feature mean and scale arrays.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func (s *StandardScaler) validate() error {
	if len(s.Mean) != prediction.FeatureDim || len(s.Scale) != prediction.FeatureDim {
		return fmt.Errorf("scaler dimension mismatch: mean=%d scale=%d want %d",
			len(s.Mean), len(s.Scale), prediction.FeatureDim)
	}
	for i, v := range s.Scale {
		if v == 0 {
			return fmt.Errorf("scaler has zero scale at feature %d", i)
		}
	}
	return nil
}

// Transform standardizes a feature vector: (x - mean) / scale per
// feature.
func (s *StandardScaler) Transform(x prediction.FeatureVector) prediction.FeatureVector {
	var out prediction.FeatureVector
	for i := range x {
		out[i] = (x[i] - s.Mean[i]) / s.Scale[i]
	}
	return out
}
