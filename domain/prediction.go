package domain

import (
	"time"
)

// StudentProfile is the input record for a single prediction request.
// It is built once per request and never mutated afterwards.
type StudentProfile struct {
	Age            int     `json:"age"`
	Gender         string  `json:"gender"`
	Course         string  `json:"course"`
	StudyHours     float64 `json:"study_hours"`
	Attendance     int     `json:"attendance"`
	StudyMethod    string  `json:"study_method"`
	InternetAccess string  `json:"internet_access"`
	SleepHours     float64 `json:"sleep_hours"`
	SleepQuality   string  `json:"sleep_quality"`
	FacilityRating string  `json:"facility_rating"`
	ExamDifficulty string  `json:"exam_difficulty"`
}

// ScoreBand is the qualitative classification of a predicted score,
// with the color the presentation layer renders it in.
type ScoreBand struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Recommendation is one improvement tip emitted by the rule engine.
type Recommendation struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// Advice is the full rule-engine outcome. Optimal is set when no rule
// fired; an empty Items slice alone is not treated as an error.
type Advice struct {
	Optimal bool             `json:"optimal"`
	Items   []Recommendation `json:"items"`
}

// Prediction is the result of one pipeline run.
type Prediction struct {
	ID        string    `json:"id"`
	Score     float64   `json:"score"`
	Band      ScoreBand `json:"band"`
	Mode      string    `json:"mode"`
	Advice    Advice    `json:"advice"`
	CreatedAt time.Time `json:"created_at"`
}
