package artifact

import (
	"fmt"
	"math"

	"github.com/yanqian/depression-screener/internal/domain/screening"
	apperrors "github.com/yanqian/depression-screener/pkg/errors"
)

// Model is an immutable, loaded classifier. It is safe for concurrent use.
type Model struct {
	name     string
	version  string
	kind     Kind
	features []string
	classes  [2]int
	scorer   scorer
}

// scorer returns class weights in artifact class order.
type scorer interface {
	score(row []float64) [2]float64
}

func newModel(doc Document) (*Model, error) {
	m := &Model{
		name:     doc.Name,
		version:  doc.Version,
		kind:     doc.Kind,
		features: append([]string(nil), doc.FeatureNames...),
		classes:  [2]int{0, 1},
	}
	if len(doc.Classes) == 2 {
		m.classes = [2]int{doc.Classes[0], doc.Classes[1]}
	}
	switch doc.Kind {
	case KindRandomForest:
		m.scorer = forest{trees: doc.Trees}
	case KindLogisticRegression:
		m.scorer = logistic{coefficients: doc.Coefficients, intercept: doc.Intercept}
	default:
		return nil, apperrors.Wrap(apperrors.CodeModelInvalid, fmt.Sprintf("unsupported model kind %q", doc.Kind), nil)
	}
	return m, nil
}

// FeatureNames returns the ordered input schema the model was trained on.
func (m *Model) FeatureNames() []string {
	return append([]string(nil), m.features...)
}

// PredictProba returns (p_negative, p_positive) for one row.
func (m *Model) PredictProba(row []float64) ([2]float64, error) {
	if len(row) != len(m.features) {
		return [2]float64{}, apperrors.Wrap(apperrors.CodeSchemaMismatch,
			fmt.Sprintf("row has %d values, model expects %d", len(row), len(m.features)), nil)
	}
	raw := m.scorer.score(row)
	total := raw[0] + raw[1]
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return [2]float64{}, apperrors.Wrap(apperrors.CodeModelError, "model produced no usable probability mass", nil)
	}
	var out [2]float64
	out[m.classes[0]] = raw[0] / total
	out[m.classes[1]] = raw[1] / total
	return out, nil
}

// Predict returns the most probable class; ties resolve to the negative class.
func (m *Model) Predict(row []float64) (int, error) {
	proba, err := m.PredictProba(row)
	if err != nil {
		return 0, err
	}
	if proba[1] > proba[0] {
		return 1, nil
	}
	return 0, nil
}

// Info describes the artifact for the API and the logs.
func (m *Model) Info() screening.ModelInfo {
	return screening.ModelInfo{
		Name:         m.name,
		Version:      m.version,
		Kind:         string(m.kind),
		FeatureNames: m.FeatureNames(),
	}
}

var _ screening.Model = (*Model)(nil)
var _ screening.Describer = (*Model)(nil)
