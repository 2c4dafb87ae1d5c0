//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/granitechief/avybrief/internal/bootstrap"
	"github.com/granitechief/avybrief/internal/domain/briefing"
	"github.com/granitechief/avybrief/internal/domain/forecast"
	"github.com/granitechief/avybrief/internal/infra/avcan"
	"github.com/granitechief/avybrief/internal/infra/config"
	"github.com/granitechief/avybrief/internal/infra/llm/gemini"
	httpiface "github.com/granitechief/avybrief/internal/interface/http"
	"github.com/granitechief/avybrief/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideSourceClient,
		provideGeminiClient,
		forecast.NewService,
		briefing.NewService,
		wire.Bind(new(forecast.SourceClient), new(*avcan.Client)),
		wire.Bind(new(briefing.TextGenerator), new(*gemini.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
