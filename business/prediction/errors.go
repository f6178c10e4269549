package prediction

import "errors"

var (
	// ErrUnknownLabel means the encoder was handed a label outside its
	// mapping. Inputs are supposed to be constrained to the mapping key
	// set upstream, so this is a contract violation and never defaults
	// to code 0.
	ErrUnknownLabel = errors.New("unknown label")

	// ErrIncompleteProfile means a required profile field is missing.
	ErrIncompleteProfile = errors.New("incomplete profile")

	// ErrModelUnavailable means the scaler/model artifacts failed to
	// load at startup. The predictor recovers by switching to the
	// heuristic path for the process lifetime.
	ErrModelUnavailable = errors.New("model unavailable")
)
