package prediction

import (
	"examscore/domain"
)

// Prediction modes, exposed so the UI can tell model output from the
// heuristic substitute.
const (
	ModeModel     = "model"
	ModeHeuristic = "heuristic"
)

// Artifacts is the narrow capability over the pre-fitted scaler and the
// pre-trained regression model. Both are loaded once at startup and are
// read-only afterwards, so a single instance is safe to share across
// requests.
type Artifacts interface {
	Transform(FeatureVector) FeatureVector
	Predict(FeatureVector) float64
}

// Predictor turns a feature vector into a bounded exam score. With a nil
// Artifacts it runs permanently in heuristic mode.
type Predictor struct {
	artifacts Artifacts
}

func NewPredictor(artifacts Artifacts) *Predictor {
	return &Predictor{artifacts: artifacts}
}

// Degraded reports whether the predictor is on the heuristic path.
func (p *Predictor) Degraded() bool {
	return p.artifacts == nil
}

// Mode returns the mode label for the path Score will take.
func (p *Predictor) Mode() string {
	if p.Degraded() {
		return ModeHeuristic
	}
	return ModeModel
}

// Score produces the clamped exam score estimate. The primary path
// scales the vector and runs model inference; the degraded path computes
// the heuristic from the raw profile. Both clamp into [0, 100].
func (p *Predictor) Score(profile domain.StudentProfile, x FeatureVector) float64 {
	if p.Degraded() {
		return clampScore(heuristicScore(profile))
	}

	raw := p.artifacts.Predict(p.artifacts.Transform(x))
	return clampScore(raw)
}

// heuristicScore is the deterministic substitute used when the model
// artifacts are unavailable: a linear adjustment around a base of 65.
func heuristicScore(p domain.StudentProfile) float64 {
	score := 65.0
	score += (p.StudyHours - 5) * 2
	score += (float64(p.Attendance) - 80) * 0.2
	if p.SleepQuality == "good" {
		score += 10
	}
	if p.ExamDifficulty == "hard" {
		score -= 10
	}
	return score
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
