package prediction

import (
	"context"
	"fmt"
	"time"

	"examscore/domain"

	"github.com/google/uuid"
)

// Service runs the full pipeline: encode → build vector → predict →
// classify → recommend. It holds no per-request state; the only shared
// state is the predictor's artifact handles, which are read-only after
// startup.
type Service struct {
	predictor *Predictor
}

func NewService(predictor *Predictor) *Service {
	return &Service{predictor: predictor}
}

// Mode reports the predictor path used for all requests in this process.
func (s *Service) Mode() string {
	return s.predictor.Mode()
}

// Predict runs one synchronous pipeline pass for a profile. The same
// profile always yields the same score, band, and advice (the id and
// timestamp are per-request).
func (s *Service) Predict(ctx context.Context, profile domain.StudentProfile) (domain.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return domain.Prediction{}, fmt.Errorf("context error: %w", err)
	}

	x, err := BuildFeatureVector(profile)
	if err != nil {
		return domain.Prediction{}, err
	}

	score := s.predictor.Score(profile, x)

	return domain.Prediction{
		ID:        uuid.NewString(),
		Score:     score,
		Band:      Classify(score),
		Mode:      s.predictor.Mode(),
		Advice:    Recommend(profile, score),
		CreatedAt: time.Now(),
	}, nil
}
