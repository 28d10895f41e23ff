package screening

import (
	"fmt"
	"slices"

	apperrors "github.com/yanqian/depression-screener/pkg/errors"
)

// Gender answers. Female is the reference category of the trained encoding.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// YesNo answers the two history questions.
type YesNo string

const (
	Yes YesNo = "Yes"
	No  YesNo = "No"
)

// SleepDuration is the average nightly sleep bucket.
type SleepDuration string

const (
	SleepUnder5 SleepDuration = "Less than 5 hours"
	Sleep5To6   SleepDuration = "5-6 hours"
	Sleep7To8   SleepDuration = "7-8 hours"
	SleepOver8  SleepDuration = "More than 8 hours"
	SleepOthers SleepDuration = "Others"
)

// DietaryHabits describes the respondent's typical diet.
type DietaryHabits string

const (
	DietHealthy   DietaryHabits = "Healthy"
	DietModerate  DietaryHabits = "Moderate"
	DietUnhealthy DietaryHabits = "Unhealthy"
	DietOthers    DietaryHabits = "Others"
)

// DegreeOthers is the catch-all qualification.
const DegreeOthers = "Others"

var (
	genders        = []Gender{GenderMale, GenderFemale}
	yesNo          = []YesNo{Yes, No}
	sleepDurations = []SleepDuration{SleepUnder5, Sleep5To6, Sleep7To8, SleepOver8, SleepOthers}
	dietaryHabits  = []DietaryHabits{DietHealthy, DietModerate, DietUnhealthy, DietOthers}
	degrees        = []string{
		"B.Tech", "B.Com", "BSc", "BA", "BBA", "BE", "BCA", "M.Tech", "MBA",
		"MSc", "MA", "PhD", "MBBS", "LLB", "B.Ed", "B.Pharm", "M.Com",
		"Class 12", "ME", "M.Ed", "M.Pharm", "BHM", "MD", "LLM", "MHM", DegreeOthers,
	}
)

// Degrees lists the selectable qualifications in display order.
func Degrees() []string {
	return slices.Clone(degrees)
}

// Numeric ranges accepted by the form.
const (
	MinAge               = 18
	MaxAge               = 60
	MinAcademicPressure  = 0
	MaxAcademicPressure  = 5
	MinStudySatisfaction = 0
	MaxStudySatisfaction = 5
	MinFinancialStress   = 1
	MaxFinancialStress   = 5
	MinWorkStudyHours    = 0
	MaxWorkStudyHours    = 12
)

// SurveyResponse is one submission of the questionnaire. It lives for a single
// request and is never persisted.
type SurveyResponse struct {
	Age               int           `json:"age"`
	Gender            Gender        `json:"gender"`
	Degree            string        `json:"degree"`
	AcademicPressure  int           `json:"academicPressure"`
	StudySatisfaction int           `json:"studySatisfaction"`
	FinancialStress   int           `json:"financialStress"`
	FamilyHistory     YesNo         `json:"familyHistory"`
	SuicidalThoughts  YesNo         `json:"suicidalThoughts"`
	SleepDuration     SleepDuration `json:"sleepDuration"`
	DietaryHabits     DietaryHabits `json:"dietaryHabits"`
	WorkStudyHours    int           `json:"workStudyHours"`
}

// DefaultResponse holds the values the form starts with.
func DefaultResponse() SurveyResponse {
	return SurveyResponse{
		Age:               25,
		Gender:            GenderMale,
		Degree:            "B.Tech",
		AcademicPressure:  3,
		StudySatisfaction: 3,
		FinancialStress:   3,
		FamilyHistory:     Yes,
		SuicidalThoughts:  Yes,
		SleepDuration:     SleepUnder5,
		DietaryHabits:     DietHealthy,
		WorkStudyHours:    6,
	}
}

// Validate checks every field against its domain and reports the first violation.
func (r SurveyResponse) Validate() error {
	checks := []struct {
		ok    bool
		field string
		want  string
	}{
		{inRange(r.Age, MinAge, MaxAge), "age", rangeText(MinAge, MaxAge)},
		{slices.Contains(genders, r.Gender), "gender", "Male or Female"},
		{slices.Contains(degrees, r.Degree), "degree", "one of the listed qualifications"},
		{inRange(r.AcademicPressure, MinAcademicPressure, MaxAcademicPressure), "academicPressure", rangeText(MinAcademicPressure, MaxAcademicPressure)},
		{inRange(r.StudySatisfaction, MinStudySatisfaction, MaxStudySatisfaction), "studySatisfaction", rangeText(MinStudySatisfaction, MaxStudySatisfaction)},
		{inRange(r.FinancialStress, MinFinancialStress, MaxFinancialStress), "financialStress", rangeText(MinFinancialStress, MaxFinancialStress)},
		{slices.Contains(yesNo, r.FamilyHistory), "familyHistory", "Yes or No"},
		{slices.Contains(yesNo, r.SuicidalThoughts), "suicidalThoughts", "Yes or No"},
		{slices.Contains(sleepDurations, r.SleepDuration), "sleepDuration", "one of the listed sleep durations"},
		{slices.Contains(dietaryHabits, r.DietaryHabits), "dietaryHabits", "one of the listed dietary habits"},
		{inRange(r.WorkStudyHours, MinWorkStudyHours, MaxWorkStudyHours), "workStudyHours", rangeText(MinWorkStudyHours, MaxWorkStudyHours)},
	}
	for _, c := range checks {
		if !c.ok {
			return apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("%s must be %s", c.field, c.want), nil)
		}
	}
	return nil
}

func inRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}

func rangeText(lo, hi int) string {
	return fmt.Sprintf("between %d and %d", lo, hi)
}
