package screening

import (
	"fmt"
	"slices"
)

// ImpactLabel grades how a factor bears on depression risk.
type ImpactLabel string

const (
	ImpactHigh    ImpactLabel = "high"
	ImpactLow     ImpactLabel = "low"
	ImpactNeutral ImpactLabel = "neutral"
)

// Text is the card caption.
func (l ImpactLabel) Text() string {
	switch l {
	case ImpactHigh:
		return "High Impact"
	case ImpactLow:
		return "Low Impact"
	default:
		return "Neutral Impact"
	}
}

// Factor names shown on the results page.
const (
	FactorSuicidalThoughts  = "Suicidal Thoughts"
	FactorAcademicPressure  = "Academic Pressure"
	FactorFamilyHistory     = "Family History"
	FactorFinancialStress   = "Financial Stress"
	FactorSleepDuration     = "Sleep Duration"
	FactorStudySatisfaction = "Study Satisfaction"
)

var riskySleep = []SleepDuration{SleepUnder5, Sleep5To6}

// FactorAnnotation explains one answer. The rules are fixed heuristics and do not come
// from the model.
type FactorAnnotation struct {
	Name   string      `json:"name"`
	Value  string      `json:"value"`
	IsRisk bool        `json:"isRisk"`
	Impact ImpactLabel `json:"impact"`
}

// Display is the impact a card is colored with. A factor that is not currently a risk
// never shows as high, and only a neutral label stays neutral.
func (f FactorAnnotation) Display() ImpactLabel {
	switch {
	case f.IsRisk:
		return ImpactHigh
	case f.Impact == ImpactNeutral:
		return ImpactNeutral
	default:
		return ImpactLow
	}
}

// CSSClass is the stylesheet class for Display.
func (f FactorAnnotation) CSSClass() string {
	return string(f.Display()) + "-impact"
}

// Explain annotates the six factors in results-page order.
func Explain(resp SurveyResponse) []FactorAnnotation {
	sleepRisk := slices.Contains(riskySleep, resp.SleepDuration)
	sleepImpact := ImpactLow
	if sleepRisk {
		sleepImpact = ImpactHigh
	}
	return []FactorAnnotation{
		{Name: FactorSuicidalThoughts, Value: string(resp.SuicidalThoughts), IsRisk: resp.SuicidalThoughts == Yes, Impact: ImpactHigh},
		{Name: FactorAcademicPressure, Value: outOfFive(resp.AcademicPressure), IsRisk: resp.AcademicPressure > 3, Impact: higherIsWorse(resp.AcademicPressure)},
		{Name: FactorFamilyHistory, Value: string(resp.FamilyHistory), IsRisk: resp.FamilyHistory == Yes, Impact: ImpactHigh},
		{Name: FactorFinancialStress, Value: outOfFive(resp.FinancialStress), IsRisk: resp.FinancialStress > 3, Impact: higherIsWorse(resp.FinancialStress)},
		{Name: FactorSleepDuration, Value: string(resp.SleepDuration), IsRisk: sleepRisk, Impact: sleepImpact},
		{Name: FactorStudySatisfaction, Value: outOfFive(resp.StudySatisfaction), IsRisk: resp.StudySatisfaction < 2, Impact: lowerIsWorse(resp.StudySatisfaction)},
	}
}

func higherIsWorse(v int) ImpactLabel {
	switch {
	case v > 3:
		return ImpactHigh
	case v < 2:
		return ImpactLow
	default:
		return ImpactNeutral
	}
}

func lowerIsWorse(v int) ImpactLabel {
	switch {
	case v < 2:
		return ImpactHigh
	case v > 3:
		return ImpactLow
	default:
		return ImpactNeutral
	}
}

func outOfFive(v int) string {
	return fmt.Sprintf("%d/5", v)
}
