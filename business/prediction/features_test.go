package prediction

import (
	"testing"

	"examscore/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullProfile() domain.StudentProfile {
	return domain.StudentProfile{
		Age:            20,
		Gender:         "male",
		Course:         "b.tech",
		StudyHours:     5.5,
		Attendance:     85,
		StudyMethod:    "self-study",
		InternetAccess: "yes",
		SleepHours:     7.5,
		SleepQuality:   "good",
		FacilityRating: "medium",
		ExamDifficulty: "moderate",
	}
}

func TestBuildFeatureVector_FixedOrder(t *testing.T) {
	x, err := BuildFeatureVector(fullProfile())
	require.NoError(t, err)

	want := FeatureVector{
		20,  // age
		1,   // gender: male
		2,   // course: b.tech
		5.5, // study hours
		85,  // attendance
		1,   // internet: yes
		7.5, // sleep hours
		1,   // sleep quality: good
		4,   // study method: self-study
		2,   // facility: medium
		2,   // difficulty: moderate
	}
	assert.Equal(t, want, x)
}

func TestBuildFeatureVector_MissingField(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.StudentProfile)
	}{
		{"gender", func(p *domain.StudentProfile) { p.Gender = "" }},
		{"course", func(p *domain.StudentProfile) { p.Course = "" }},
		{"internet_access", func(p *domain.StudentProfile) { p.InternetAccess = "" }},
		{"sleep_quality", func(p *domain.StudentProfile) { p.SleepQuality = "" }},
		{"study_method", func(p *domain.StudentProfile) { p.StudyMethod = "" }},
		{"facility_rating", func(p *domain.StudentProfile) { p.FacilityRating = "" }},
		{"exam_difficulty", func(p *domain.StudentProfile) { p.ExamDifficulty = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := fullProfile()
			tc.mutate(&p)

			_, err := BuildFeatureVector(p)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIncompleteProfile)
			assert.Contains(t, err.Error(), tc.name)
		})
	}
}

func TestBuildFeatureVector_UnknownLabel(t *testing.T) {
	p := fullProfile()
	p.Course = "astrology"

	_, err := BuildFeatureVector(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownLabel)
}
