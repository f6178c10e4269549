package artifact

import (
	"encoding/json"
	"fmt"
	"os"

	"examscore/business/prediction"
)

// Set bundles the loaded scaler and model as the single capability the
// prediction core consumes. It is immutable after Load.
type Set struct {
	scaler *StandardScaler
	model  *LinearModel
}

func (s *Set) Transform(x prediction.FeatureVector) prediction.FeatureVector {
	return s.scaler.Transform(x)
}

func (s *Set) Predict(x prediction.FeatureVector) float64 {
	return s.model.Predict(x)
}

// Load reads both artifact files once at startup. Any failure wraps
// prediction.ErrModelUnavailable; the caller marks the process degraded
// instead of crashing, and the load is never retried.
func Load(modelPath, scalerPath string) (*Set, error) {
	var model LinearModel
	if err := readJSON(modelPath, &model); err != nil {
		return nil, fmt.Errorf("%w: load model: %v", prediction.ErrModelUnavailable, err)
	}
	if err := model.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", prediction.ErrModelUnavailable, err)
	}

	var scaler StandardScaler
	if err := readJSON(scalerPath, &scaler); err != nil {
		return nil, fmt.Errorf("%w: load scaler: %v", prediction.ErrModelUnavailable, err)
	}
	if err := scaler.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", prediction.ErrModelUnavailable, err)
	}

	return &Set{scaler: &scaler, model: &model}, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
