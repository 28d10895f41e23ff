package screening

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/depression-screener/pkg/errors"
)

func TestClassifyPassesRowAndProbabilities(t *testing.T) {
	model := &stubModel{features: trainedFeatures, label: 1, proba: [2]float64{0.27, 0.73}}
	vec, err := Encode(riskyResponse(), model.features)
	require.NoError(t, err)

	got, err := Classify(context.Background(), model, vec)
	require.NoError(t, err)
	require.Equal(t, 1, got.Label)
	require.InDelta(t, 0.73, got.ProbabilityPositive, 1e-9)
	require.InDelta(t, 0.27, got.ProbabilityNegative, 1e-9)
	require.Equal(t, "73.00", got.Percent())
	require.True(t, got.HighRisk())

	require.Len(t, model.rows, 1)
	require.Equal(t, vec.Row(), model.rows[0])
}

func TestClassifyLowRiskPercentUsesNegativeProbability(t *testing.T) {
	model := &stubModel{features: trainedFeatures, label: 0, proba: [2]float64{0.8125, 0.1875}}
	vec, err := Encode(favorableResponse(), model.features)
	require.NoError(t, err)

	got, err := Classify(context.Background(), model, vec)
	require.NoError(t, err)
	require.False(t, got.HighRisk())
	require.Equal(t, "81.25", got.Percent())
}

func TestClassifyProbabilitiesSumToOne(t *testing.T) {
	model := &stubModel{features: trainedFeatures, label: 0, proba: [2]float64{0.6, 0.6}}
	vec, err := Encode(DefaultResponse(), model.features)
	require.NoError(t, err)

	got, err := Classify(context.Background(), model, vec)
	require.NoError(t, err)
	require.InDelta(t, 1.0, got.ProbabilityPositive+got.ProbabilityNegative, 1e-6)
	require.InDelta(t, 0.5, got.ProbabilityPositive, 1e-9)
}

func TestClassifyRejectsBadModelOutput(t *testing.T) {
	vec, err := Encode(DefaultResponse(), trainedFeatures)
	require.NoError(t, err)

	cases := map[string]*stubModel{
		"unknown label": {features: trainedFeatures, label: 2, proba: [2]float64{0.5, 0.5}},
		"nan":           {features: trainedFeatures, label: 0, proba: [2]float64{math.NaN(), 0.5}},
		"negative":      {features: trainedFeatures, label: 0, proba: [2]float64{-0.1, 1.1}},
		"zero mass":     {features: trainedFeatures, label: 0, proba: [2]float64{0, 0}},
		"model failure": {features: trainedFeatures, err: errors.New("inference crashed")},
	}
	for name, model := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Classify(context.Background(), model, vec)
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, apperrors.CodeModelError))
		})
	}
}

func TestClassifyKeepsModelErrorCodes(t *testing.T) {
	vec, err := Encode(DefaultResponse(), trainedFeatures)
	require.NoError(t, err)
	model := &stubModel{features: trainedFeatures, err: apperrors.Wrap(apperrors.CodeSchemaMismatch, "row width", nil)}

	_, err = Classify(context.Background(), model, vec)
	require.True(t, apperrors.IsCode(err, apperrors.CodeSchemaMismatch))
}

func TestClassifyIsIdempotent(t *testing.T) {
	model := sumModel{features: trainedFeatures}
	resp := riskyResponse()

	first, err := Encode(resp, model.FeatureNames())
	require.NoError(t, err)
	second, err := Encode(resp, model.FeatureNames())
	require.NoError(t, err)

	a, err := Classify(context.Background(), model, first)
	require.NoError(t, err)
	b, err := Classify(context.Background(), model, second)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestClassifyHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	vec, err := Encode(DefaultResponse(), trainedFeatures)
	require.NoError(t, err)

	_, err = Classify(ctx, &stubModel{features: trainedFeatures}, vec)
	require.ErrorIs(t, err, context.Canceled)
}
