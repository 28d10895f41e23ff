package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/yanqian/depression-screener/internal/domain/screening"
	"github.com/yanqian/depression-screener/internal/infra/artifact"
	"github.com/yanqian/depression-screener/internal/infra/config"
	apperrors "github.com/yanqian/depression-screener/pkg/errors"
)

func provideScreeningConfig(cfg *config.Config) screening.Config {
	return screening.Config{
		Delay: cfg.Prediction.Delay,
	}
}

func provideModelSource(cfg *config.Config, logger *slog.Logger) (artifact.Source, error) {
	if cfg.Model.Source != config.ModelSourceS3 {
		return artifact.FileSource{Path: cfg.Model.Path}, nil
	}
	s3 := cfg.Model.S3
	src, err := artifact.NewS3Source(artifact.S3Options{
		Endpoint:  s3.Endpoint,
		AccessKey: s3.AccessKey,
		SecretKey: s3.SecretKey,
		Region:    s3.Region,
		Bucket:    s3.Bucket,
		Key:       s3.Key,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("model artifact will be read from object storage", "endpoint", s3.Endpoint, "location", src.Location())
	return src, nil
}

func provideModel(ctx context.Context, src artifact.Source, logger *slog.Logger) (*artifact.Model, error) {
	model, err := artifact.Load(ctx, src, logger)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeModelNotFound) {
			return nil, &modelMissingError{location: src.Location(), err: err}
		}
		return nil, err
	}
	return model, nil
}

// modelMissingError marks a startup failure caused by an absent artifact.
type modelMissingError struct {
	location string
	err      error
}

func (e *modelMissingError) Error() string {
	return fmt.Sprintf("Fatal Error: Model file '%s' not found.\nPlease ensure the model file is in the same directory as this script.", e.location)
}

func (e *modelMissingError) Unwrap() error {
	return e.err
}

func startupError(err error) error {
	var missing *modelMissingError
	if errors.As(err, &missing) {
		return missing
	}
	return fmt.Errorf("failed to wire application: %w", err)
}
