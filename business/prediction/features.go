package prediction

import (
	"fmt"

	"examscore/domain"
)

// FeatureDim is the input dimension the model was trained on.
const FeatureDim = 11

// FeatureVector is the model input. Index layout (an external contract
// with the trained artifacts, never reorder):
//
//	0  age
//	1  gender code
//	2  course code
//	3  study hours
//	4  attendance
//	5  internet access code
//	6  sleep hours
//	7  sleep quality code
//	8  study method code
//	9  facility rating code
//	10 exam difficulty code
type FeatureVector [FeatureDim]float64

// BuildFeatureVector assembles the model input from a complete profile.
// Numeric fields pass through unchanged, categorical fields are encoded
// via the mapping tables. A missing categorical field fails with
// ErrIncompleteProfile before any encoding is attempted.
func BuildFeatureVector(p domain.StudentProfile) (FeatureVector, error) {
	var x FeatureVector

	categorical := []struct {
		field string
		label string
		index int
	}{
		{FieldGender, p.Gender, 1},
		{FieldCourse, p.Course, 2},
		{FieldInternetAccess, p.InternetAccess, 5},
		{FieldSleepQuality, p.SleepQuality, 7},
		{FieldStudyMethod, p.StudyMethod, 8},
		{FieldFacilityRating, p.FacilityRating, 9},
		{FieldExamDifficulty, p.ExamDifficulty, 10},
	}

	for _, c := range categorical {
		if c.label == "" {
			return FeatureVector{}, fmt.Errorf("%w: missing %s", ErrIncompleteProfile, c.field)
		}

		code, err := Encode(c.field, c.label)
		if err != nil {
			return FeatureVector{}, err
		}
		x[c.index] = float64(code)
	}

	x[0] = float64(p.Age)
	x[3] = p.StudyHours
	x[4] = float64(p.Attendance)
	x[6] = p.SleepHours

	return x, nil
}
