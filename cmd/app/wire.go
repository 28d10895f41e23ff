//go:build wireinject
// +build wireinject

package main

import (
	"context"
	"log/slog"

	"github.com/google/wire"

	"github.com/yanqian/depression-screener/internal/bootstrap"
	"github.com/yanqian/depression-screener/internal/domain/screening"
	"github.com/yanqian/depression-screener/internal/infra/artifact"
	"github.com/yanqian/depression-screener/internal/infra/config"
	httpiface "github.com/yanqian/depression-screener/internal/interface/http"
	"github.com/yanqian/depression-screener/pkg/logger"
)

var screeningSet = wire.NewSet(
	provideScreeningConfig,
	provideModelSource,
	provideModel,
	screening.NewService,
	wire.Bind(new(screening.Model), new(*artifact.Model)),
)

func initializeApp(ctx context.Context) (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		screeningSet,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

func initializeService(ctx context.Context, logger *slog.Logger) (screening.Service, error) {
	wire.Build(
		config.Load,
		screeningSet,
	)
	return nil, nil
}
