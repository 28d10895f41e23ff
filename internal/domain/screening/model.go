package screening

import "time"

// Model is the trained classifier. Implementations must be safe for concurrent reads;
// the service never mutates it.
type Model interface {
	FeatureNames() []string
	Predict(row []float64) (int, error)
	PredictProba(row []float64) ([2]float64, error)
}

// Describer is implemented by models that know their own provenance.
type Describer interface {
	Info() ModelInfo
}

// ModelInfo is what the API reports about the loaded artifact.
type ModelInfo struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Kind         string   `json:"kind"`
	FeatureNames []string `json:"featureNames"`
}

// Config wires runtime knobs for the screening domain.
type Config struct {
	// Delay is slept before inference on every assessment. Zero disables it.
	Delay time.Duration
}

func describe(m Model) ModelInfo {
	if d, ok := m.(Describer); ok {
		return d.Info()
	}
	return ModelInfo{FeatureNames: m.FeatureNames()}
}
