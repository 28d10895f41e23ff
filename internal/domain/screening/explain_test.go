package screening

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExplainAllRiskFactorsHigh(t *testing.T) {
	factors := Explain(riskyResponse())
	require.Len(t, factors, 6)

	for _, f := range factors {
		require.True(t, f.IsRisk, f.Name)
		require.Equal(t, ImpactHigh, f.Impact, f.Name)
		require.Equal(t, ImpactHigh, f.Display(), f.Name)
		require.Equal(t, "high-impact", f.CSSClass(), f.Name)
	}
	require.Equal(t, "4/5", byName(factors, FactorAcademicPressure).Value)
	require.Equal(t, "Less than 5 hours", byName(factors, FactorSleepDuration).Value)
}

func TestExplainFavorableAnswers(t *testing.T) {
	factors := Explain(favorableResponse())

	want := map[string]ImpactLabel{
		FactorAcademicPressure:  ImpactLow,
		FactorFinancialStress:   ImpactLow,
		FactorStudySatisfaction: ImpactLow,
		FactorSleepDuration:     ImpactLow,
		FactorFamilyHistory:     ImpactHigh,
		FactorSuicidalThoughts:  ImpactHigh,
	}
	for name, impact := range want {
		f := byName(factors, name)
		require.False(t, f.IsRisk, name)
		require.Equal(t, impact, f.Impact, name)
		require.Equal(t, ImpactLow, f.Display(), name)
	}
	require.Equal(t, "High Impact", byName(factors, FactorFamilyHistory).Impact.Text())
}

func TestExplainNeutralBand(t *testing.T) {
	resp := favorableResponse()
	resp.AcademicPressure = 2
	resp.FinancialStress = 3
	resp.StudySatisfaction = 3

	factors := Explain(resp)
	for _, name := range []string{FactorAcademicPressure, FactorFinancialStress, FactorStudySatisfaction} {
		f := byName(factors, name)
		require.Equal(t, ImpactNeutral, f.Impact, name)
		require.Equal(t, ImpactNeutral, f.Display(), name)
		require.Equal(t, "neutral-impact", f.CSSClass(), name)
		require.Equal(t, "Neutral Impact", f.Impact.Text(), name)
	}
}

func TestExplainSleepBuckets(t *testing.T) {
	cases := map[SleepDuration]bool{
		SleepUnder5: true,
		Sleep5To6:   true,
		Sleep7To8:   false,
		SleepOver8:  false,
		SleepOthers: false,
	}
	for sleep, risky := range cases {
		resp := favorableResponse()
		resp.SleepDuration = sleep
		f := byName(Explain(resp), FactorSleepDuration)
		require.Equal(t, risky, f.IsRisk, sleep)
		if risky {
			require.Equal(t, ImpactHigh, f.Impact)
		} else {
			require.Equal(t, ImpactLow, f.Impact)
		}
	}
}

func TestExplainOrder(t *testing.T) {
	var names []string
	for _, f := range Explain(DefaultResponse()) {
		names = append(names, f.Name)
	}
	require.Equal(t, []string{
		FactorSuicidalThoughts, FactorAcademicPressure, FactorFamilyHistory,
		FactorFinancialStress, FactorSleepDuration, FactorStudySatisfaction,
	}, names)
}

func TestGuidanceFor(t *testing.T) {
	high := GuidanceFor(LabelHighRisk)
	require.Equal(t, "Next Steps & Resources", high.Title)
	require.Equal(t, "High risk of Depression", high.Headline)
	require.False(t, high.Ordered)
	require.Len(t, high.Steps, 3)

	low := GuidanceFor(LabelLowRisk)
	require.Equal(t, "Maintaining Your Well-being", low.Title)
	require.True(t, low.Ordered)
	require.Equal(t, "Stay Connected", low.Steps[0].Heading)
}

func byName(factors []FactorAnnotation, name string) FactorAnnotation {
	for _, f := range factors {
		if f.Name == name {
			return f
		}
	}
	return FactorAnnotation{}
}
