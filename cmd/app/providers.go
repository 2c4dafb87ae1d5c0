package main

import (
	"github.com/granitechief/avybrief/internal/infra/avcan"
	"github.com/granitechief/avybrief/internal/infra/config"
	"github.com/granitechief/avybrief/internal/infra/llm/gemini"
)

func provideSourceClient(cfg *config.Config) *avcan.Client {
	return avcan.NewClient(cfg.Forecast)
}

func provideGeminiClient(cfg *config.Config) *gemini.Client {
	return gemini.NewClient(cfg.LLM)
}
