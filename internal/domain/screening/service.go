package screening

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/depression-screener/pkg/metrics"
	"github.com/yanqian/depression-screener/pkg/util"
)

// Assessment is the immutable outcome of one submission, handed straight to the
// results view.
type Assessment struct {
	ID         string             `json:"id"`
	Answers    SurveyResponse     `json:"answers"`
	Prediction PredictionResult   `json:"prediction"`
	Factors    []FactorAnnotation `json:"factors"`
	Guidance   Guidance           `json:"guidance"`
	Model      string             `json:"model,omitempty"`
	Version    string             `json:"modelVersion,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	Latency    metrics.Latency    `json:"latency"`
}

// Service exposes the screening flow.
type Service interface {
	Assess(ctx context.Context, resp SurveyResponse) (Assessment, error)
	Model() ModelInfo
}

type service struct {
	cfg    Config
	model  Model
	info   ModelInfo
	logger *slog.Logger
	now    util.Clock
	newID  func() string
}

// NewService wires up the screening domain around a loaded model.
func NewService(cfg Config, model Model, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		model:  model,
		info:   describe(model),
		logger: logger.With("component", "screening.service"),
		now:    util.NowUTC,
		newID:  uuid.NewString,
	}
}

func (s *service) Model() ModelInfo {
	return s.info
}

func (s *service) Assess(ctx context.Context, resp SurveyResponse) (Assessment, error) {
	start := time.Now()
	if err := resp.Validate(); err != nil {
		return Assessment{}, err
	}
	if err := s.pause(ctx); err != nil {
		return Assessment{}, err
	}

	vec, err := Encode(resp, s.model.FeatureNames())
	if err != nil {
		s.logger.Error("feature encoding failed", "error", err)
		return Assessment{}, err
	}

	inferStart := time.Now()
	prediction, err := Classify(ctx, s.model, vec)
	if err != nil {
		s.logger.Error("classification failed", "error", err)
		return Assessment{}, err
	}
	inference := time.Since(inferStart)

	out := Assessment{
		ID:         s.newID(),
		Answers:    resp,
		Prediction: prediction,
		Factors:    Explain(resp),
		Guidance:   GuidanceFor(prediction.Label),
		Model:      s.info.Name,
		Version:    s.info.Version,
		CreatedAt:  s.now(),
		Latency:    metrics.NewLatency(inference, time.Since(start)),
	}
	s.logger.Info("assessment completed", "assessment_id", out.ID, "label", prediction.Label, "inference_us", out.Latency.InferenceMicros)
	return out, nil
}

func (s *service) pause(ctx context.Context) error {
	if s.cfg.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.cfg.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
