package prediction

import (
	"fmt"
	"sort"
)

// MappingVersion identifies the label encodings baked in below. It must
// move in lockstep with the trained model artifacts.
const MappingVersion = 1

// Categorical field names.
const (
	FieldGender         = "gender"
	FieldCourse         = "course"
	FieldInternetAccess = "internet_access"
	FieldStudyMethod    = "study_method"
	FieldFacilityRating = "facility_rating"
	FieldExamDifficulty = "exam_difficulty"
	FieldSleepQuality   = "sleep_quality"
)

// mappings holds the label → code tables for every categorical field.
// Codes follow the alphabetical label order used at model-training time,
// so reordering or renumbering anything here silently corrupts
// predictions.
var mappings = map[string]map[string]int{
	FieldGender:         {"female": 0, "male": 1, "other": 2},
	FieldCourse:         {"b.com": 0, "b.sc": 1, "b.tech": 2, "ba": 3, "bba": 4, "bca": 5, "diploma": 6},
	FieldInternetAccess: {"no": 0, "yes": 1},
	FieldStudyMethod:    {"coaching": 0, "group study": 1, "mixed": 2, "online videos": 3, "self-study": 4},
	FieldFacilityRating: {"high": 0, "low": 1, "medium": 2},
	FieldExamDifficulty: {"easy": 0, "hard": 1, "moderate": 2},
	FieldSleepQuality:   {"average": 0, "good": 1, "poor": 2},
}

// Encode returns the integer code for a label of the given categorical
// field. An out-of-domain label fails loudly with ErrUnknownLabel.
func Encode(field, label string) (int, error) {
	m, ok := mappings[field]
	if !ok {
		return 0, fmt.Errorf("%w: no mapping for field %q", ErrUnknownLabel, field)
	}

	code, ok := m[label]
	if !ok {
		return 0, fmt.Errorf("%w: field %q has no label %q", ErrUnknownLabel, field, label)
	}

	return code, nil
}

// Labels returns the allowed labels for a categorical field in code
// order. Used by the schema endpoint to publish the input options.
func Labels(field string) []string {
	m, ok := mappings[field]
	if !ok {
		return nil
	}

	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return m[labels[i]] < m[labels[j]]
	})

	return labels
}

// CategoricalFields returns the field names that carry a mapping,
// sorted for stable output.
func CategoricalFields() []string {
	fields := make([]string, 0, len(mappings))
	for f := range mappings {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}
