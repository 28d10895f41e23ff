package screening

import (
	"context"
	"fmt"
	"math"

	apperrors "github.com/yanqian/depression-screener/pkg/errors"
)

// Risk labels produced by the model.
const (
	LabelLowRisk  = 0
	LabelHighRisk = 1
)

const probabilityTolerance = 1e-6

// PredictionResult is the model output for one submission.
type PredictionResult struct {
	Label               int     `json:"label"`
	ProbabilityPositive float64 `json:"probabilityPositive"`
	ProbabilityNegative float64 `json:"probabilityNegative"`
}

// HighRisk reports whether the model flagged the submission.
func (p PredictionResult) HighRisk() bool {
	return p.Label == LabelHighRisk
}

// Probability is the probability of the predicted label.
func (p PredictionResult) Probability() float64 {
	if p.HighRisk() {
		return p.ProbabilityPositive
	}
	return p.ProbabilityNegative
}

// Percent formats Probability as a percentage with two decimals.
func (p PredictionResult) Percent() string {
	return fmt.Sprintf("%.2f", p.Probability()*100)
}

// Classify calls Predict and PredictProba once each over the encoded row.
func Classify(ctx context.Context, model Model, vec FeatureVector) (PredictionResult, error) {
	if err := ctx.Err(); err != nil {
		return PredictionResult{}, err
	}
	if vec.Len() == 0 {
		return PredictionResult{}, apperrors.Wrap(apperrors.CodeSchemaMismatch, "feature vector is empty", nil)
	}
	row := vec.Row()

	label, err := model.Predict(row)
	if err != nil {
		return PredictionResult{}, wrapModelErr("predict", err)
	}
	if label != LabelLowRisk && label != LabelHighRisk {
		return PredictionResult{}, apperrors.Wrap(apperrors.CodeModelError, fmt.Sprintf("model returned unknown label %d", label), nil)
	}

	proba, err := model.PredictProba(row)
	if err != nil {
		return PredictionResult{}, wrapModelErr("predict_proba", err)
	}
	neg, pos, err := normalizeProba(proba)
	if err != nil {
		return PredictionResult{}, err
	}

	return PredictionResult{Label: label, ProbabilityPositive: pos, ProbabilityNegative: neg}, nil
}

func wrapModelErr(op string, err error) error {
	if apperrors.CodeOf(err) != "" {
		return err
	}
	return apperrors.Wrap(apperrors.CodeModelError, "model "+op+" failed", err)
}

func normalizeProba(p [2]float64) (float64, float64, error) {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return 0, 0, apperrors.Wrap(apperrors.CodeModelError, fmt.Sprintf("model returned invalid probabilities %v", p), nil)
		}
	}
	sum := p[0] + p[1]
	if sum == 0 {
		return 0, 0, apperrors.Wrap(apperrors.CodeModelError, "model returned zero probability mass", nil)
	}
	if math.Abs(sum-1) <= probabilityTolerance/10 {
		return p[0], p[1], nil
	}
	neg := p[0] / sum
	return neg, 1 - neg, nil
}
