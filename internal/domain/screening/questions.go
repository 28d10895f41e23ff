package screening

import "strconv"

// QuestionKind tells a client which input control renders a question.
type QuestionKind string

const (
	KindSlider QuestionKind = "slider"
	KindRadio  QuestionKind = "radio"
	KindSelect QuestionKind = "select"
)

// Question describes one form field.
type Question struct {
	Key     string       `json:"key"`
	Label   string       `json:"label"`
	Help    string       `json:"help"`
	Kind    QuestionKind `json:"kind"`
	Options []string     `json:"options,omitempty"`
	Min     int          `json:"min,omitempty"`
	Max     int          `json:"max,omitempty"`
	Default string       `json:"default"`
}

// Questions returns the questionnaire in form order.
func Questions() []Question {
	d := DefaultResponse()
	return []Question{
		{Key: "age", Label: "Age", Help: "Please select your current age.", Kind: KindSlider, Min: MinAge, Max: MaxAge, Default: itoa(d.Age)},
		{Key: "gender", Label: "Gender", Help: "Please select your gender.", Kind: KindRadio, Options: toStrings(genders), Default: string(d.Gender)},
		{Key: "degree", Label: "Highest Qualification", Help: "Please select your highest current or completed qualification.", Kind: KindSelect, Options: Degrees(), Default: d.Degree},
		{Key: "academicPressure", Label: "Academic Pressure", Help: "Rate your current academic pressure on a scale of 0 to 5, where 0 is no pressure and 5 is very high pressure.", Kind: KindSlider, Min: MinAcademicPressure, Max: MaxAcademicPressure, Default: itoa(d.AcademicPressure)},
		{Key: "studySatisfaction", Label: "Study Satisfaction", Help: "Rate your satisfaction with your studies on a scale of 0 to 5, where 0 is not satisfied at all and 5 is very satisfied.", Kind: KindSlider, Min: MinStudySatisfaction, Max: MaxStudySatisfaction, Default: itoa(d.StudySatisfaction)},
		{Key: "financialStress", Label: "Financial Stress", Help: "Rate your level of financial stress on a scale of 1 to 5, where 1 is no stress and 5 is very high stress.", Kind: KindSlider, Min: MinFinancialStress, Max: MaxFinancialStress, Default: itoa(d.FinancialStress)},
		{Key: "familyHistory", Label: "Family History of Mental Illness", Help: "Has anyone in your family been diagnosed with a mental illness?", Kind: KindRadio, Options: toStrings(yesNo), Default: string(d.FamilyHistory)},
		{Key: "suicidalThoughts", Label: "History of Suicidal Thoughts", Help: "Have you ever experienced suicidal thoughts?", Kind: KindRadio, Options: toStrings(yesNo), Default: string(d.SuicidalThoughts)},
		{Key: "sleepDuration", Label: "Average Sleep Duration", Help: "On average, how many hours of sleep do you get per night?", Kind: KindSelect, Options: toStrings(sleepDurations), Default: string(d.SleepDuration)},
		{Key: "dietaryHabits", Label: "Dietary Habits", Help: "How would you describe your typical diet?", Kind: KindSelect, Options: toStrings(dietaryHabits), Default: string(d.DietaryHabits)},
		{Key: "workStudyHours", Label: "Work/Study Hours per Day", Help: "On average, how many hours do you spend working or studying each day?", Kind: KindSlider, Min: MinWorkStudyHours, Max: MaxWorkStudyHours, Default: itoa(d.WorkStudyHours)},
	}
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
