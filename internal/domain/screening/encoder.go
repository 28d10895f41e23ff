package screening

import (
	"fmt"
	"strings"

	apperrors "github.com/yanqian/depression-screener/pkg/errors"
)

// Column names of the trained schema that the encoder writes directly.
const (
	FeatureAge               = "Age"
	FeatureAcademicPressure  = "Academic Pressure"
	FeatureWorkPressure      = "Work Pressure"
	FeatureCGPA              = "CGPA"
	FeatureStudySatisfaction = "Study Satisfaction"
	FeatureJobSatisfaction   = "Job Satisfaction"
	FeatureWorkStudyHours    = "Work/Study Hours"
	FeatureFinancialStress   = "Financial Stress"
	FeatureGenderMale        = "Gender_Male"
	FeatureDegreeOthers      = "Degree_Others"
)

// Field labels used as one-hot column prefixes.
const (
	labelSleepDuration    = "Sleep Duration"
	labelDietaryHabits    = "Dietary Habits"
	labelSuicidalThoughts = "Have you ever had suicidal thoughts ?"
	labelFamilyHistory    = "Family History of Mental Illness"
	labelDegree           = "Degree"
)

// FeatureVector is one encoded row keyed by the model's feature names, kept in the
// model's column order.
type FeatureVector struct {
	names  []string
	values []float64
	index  map[string]int
}

func newFeatureVector(expected []string) (FeatureVector, error) {
	if len(expected) == 0 {
		return FeatureVector{}, apperrors.Wrap(apperrors.CodeSchemaMismatch, "model feature schema is empty", nil)
	}
	index := make(map[string]int, len(expected))
	for i, name := range expected {
		if strings.TrimSpace(name) == "" {
			return FeatureVector{}, apperrors.Wrap(apperrors.CodeSchemaMismatch, fmt.Sprintf("model feature %d has a blank name", i), nil)
		}
		if _, dup := index[name]; dup {
			return FeatureVector{}, apperrors.Wrap(apperrors.CodeSchemaMismatch, fmt.Sprintf("model feature %q is listed twice", name), nil)
		}
		index[name] = i
	}
	return FeatureVector{
		names:  append([]string(nil), expected...),
		values: make([]float64, len(expected)),
		index:  index,
	}, nil
}

// Has reports whether name is a column of the vector.
func (v FeatureVector) Has(name string) bool {
	_, ok := v.index[name]
	return ok
}

// set writes name if the schema has it. Columns the schema lacks are dropped, which is
// the projection onto the trained column set.
func (v FeatureVector) set(name string, value float64) bool {
	i, ok := v.index[name]
	if ok {
		v.values[i] = value
	}
	return ok
}

// Value returns the encoded value of name and whether the column exists.
func (v FeatureVector) Value(name string) (float64, bool) {
	i, ok := v.index[name]
	if !ok {
		return 0, false
	}
	return v.values[i], true
}

// Names returns the column names in model order.
func (v FeatureVector) Names() []string {
	return append([]string(nil), v.names...)
}

// Row returns the values in model order, ready for inference.
func (v FeatureVector) Row() []float64 {
	return append([]float64(nil), v.values...)
}

// Len is the number of columns.
func (v FeatureVector) Len() int {
	return len(v.names)
}

// Map returns the vector as name -> value.
func (v FeatureVector) Map() map[string]float64 {
	out := make(map[string]float64, len(v.names))
	for i, name := range v.names {
		out[name] = v.values[i]
	}
	return out
}

// Encode maps a survey response onto the model's feature schema. Unset columns stay 0;
// categorical answers activate "<label>_<answer>" when that column exists, so the
// reference category of each field is the all-zero encoding.
func Encode(resp SurveyResponse, expected []string) (FeatureVector, error) {
	vec, err := newFeatureVector(expected)
	if err != nil {
		return FeatureVector{}, err
	}

	vec.set(FeatureAge, float64(resp.Age))
	vec.set(FeatureAcademicPressure, float64(resp.AcademicPressure))
	vec.set(FeatureStudySatisfaction, float64(resp.StudySatisfaction))
	vec.set(FeatureFinancialStress, float64(resp.FinancialStress))
	vec.set(FeatureWorkStudyHours, float64(resp.WorkStudyHours))
	// Trained on, never asked on the form.
	vec.set(FeatureWorkPressure, 0)
	vec.set(FeatureCGPA, 0)
	vec.set(FeatureJobSatisfaction, 0)

	if resp.Gender == GenderMale {
		vec.set(FeatureGenderMale, 1)
	}
	vec.set(oneHot(labelSleepDuration, string(resp.SleepDuration)), 1)
	vec.set(oneHot(labelDietaryHabits, string(resp.DietaryHabits)), 1)
	if resp.SuicidalThoughts == Yes {
		vec.set(oneHot(labelSuicidalThoughts, string(Yes)), 1)
	}
	if resp.FamilyHistory == Yes {
		vec.set(oneHot(labelFamilyHistory, string(Yes)), 1)
	}

	// Degrees outside the trained vocabulary fall into the catch-all column.
	if !vec.set(oneHot(labelDegree, resp.Degree), 1) {
		vec.set(FeatureDegreeOthers, 1)
	}

	return vec, nil
}

func oneHot(label, answer string) string {
	return label + "_" + answer
}
