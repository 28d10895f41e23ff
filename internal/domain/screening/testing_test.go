package screening

import (
	"io"
	"log/slog"
)

// trainedFeatures mirrors the column layout of the exported forest: numerics first, then
// drop-first one-hot indicators.
var trainedFeatures = []string{
	"Age", "Academic Pressure", "Work Pressure", "CGPA", "Study Satisfaction",
	"Job Satisfaction", "Work/Study Hours", "Financial Stress",
	"Gender_Male",
	"Sleep Duration_7-8 hours", "Sleep Duration_Less than 5 hours", "Sleep Duration_More than 8 hours", "Sleep Duration_Others",
	"Dietary Habits_Moderate", "Dietary Habits_Others", "Dietary Habits_Unhealthy",
	"Degree_B.Com", "Degree_B.Ed", "Degree_B.Pharm", "Degree_B.Tech", "Degree_BA", "Degree_BBA",
	"Degree_BCA", "Degree_BE", "Degree_BHM", "Degree_BSc", "Degree_Class 12", "Degree_LLB",
	"Degree_LLM", "Degree_M.Com", "Degree_M.Ed", "Degree_M.Pharm", "Degree_M.Tech", "Degree_MA",
	"Degree_MBA", "Degree_MBBS", "Degree_MD", "Degree_ME", "Degree_MHM", "Degree_MSc",
	"Degree_Others", "Degree_PhD",
	"Have you ever had suicidal thoughts ?_Yes",
	"Family History of Mental Illness_Yes",
}

type stubModel struct {
	features []string
	label    int
	proba    [2]float64
	err      error
	rows     [][]float64
}

func (m *stubModel) FeatureNames() []string { return m.features }

func (m *stubModel) Predict(row []float64) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.rows = append(m.rows, row)
	return m.label, nil
}

func (m *stubModel) PredictProba(row []float64) ([2]float64, error) {
	if m.err != nil {
		return [2]float64{}, m.err
	}
	return m.proba, nil
}

// sumModel scores by summing the row, so different rows give different results.
type sumModel struct {
	features []string
}

func (m sumModel) FeatureNames() []string { return m.features }

func (m sumModel) Predict(row []float64) (int, error) {
	p, _ := m.PredictProba(row)
	if p[1] > p[0] {
		return 1, nil
	}
	return 0, nil
}

func (m sumModel) PredictProba(row []float64) ([2]float64, error) {
	var total float64
	for _, v := range row {
		total += v
	}
	pos := total / (total + 50)
	return [2]float64{1 - pos, pos}, nil
}

func riskyResponse() SurveyResponse {
	return SurveyResponse{
		Age:               25,
		Gender:            GenderMale,
		Degree:            "B.Tech",
		AcademicPressure:  4,
		StudySatisfaction: 1,
		FinancialStress:   4,
		FamilyHistory:     Yes,
		SuicidalThoughts:  Yes,
		SleepDuration:     SleepUnder5,
		DietaryHabits:     DietUnhealthy,
		WorkStudyHours:    6,
	}
}

func favorableResponse() SurveyResponse {
	r := riskyResponse()
	r.AcademicPressure = 1
	r.FinancialStress = 1
	r.StudySatisfaction = 5
	r.SleepDuration = SleepOver8
	r.FamilyHistory = No
	r.SuicidalThoughts = No
	return r
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
