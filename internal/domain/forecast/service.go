package forecast

import (
	"context"
	"log/slog"

	apperrors "github.com/granitechief/avybrief/pkg/errors"
)

// Service exposes forecast retrieval capabilities.
type Service interface {
	CurrentForecast(ctx context.Context) (*CleanedForecast, error)
}

// SourceClient fetches the raw forecast product from the upstream API.
type SourceClient interface {
	FetchPoint(ctx context.Context) (any, error)
}

type service struct {
	source SourceClient
	logger *slog.Logger
}

// NewService wires up the forecast domain.
func NewService(source SourceClient, logger *slog.Logger) Service {
	return &service{
		source: source,
		logger: logger.With("component", "forecast.service"),
	}
}

func (s *service) CurrentForecast(ctx context.Context) (*CleanedForecast, error) {
	raw, err := s.source.FetchPoint(ctx)
	if err != nil {
		return nil, apperrors.Wrap("upstream_error", "Could not retrieve external forecast data", err)
	}

	cleaned := Normalize(raw)
	if cleaned == nil {
		return nil, apperrors.Wrap("no_data", "No usable forecast data was found for this location or date.", nil)
	}

	s.logger.Info("forecast cleaned", "area", cleaned.AreaName, "days", len(cleaned.DailyRatings))
	return cleaned, nil
}
