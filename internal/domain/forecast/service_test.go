package forecast

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/granitechief/avybrief/pkg/errors"
)

func TestServiceCurrentForecastSuccess(t *testing.T) {
	source := &stubSourceClient{
		payload: map[string]any{
			"report": map[string]any{"forecaster": "J. Smith"},
			"area":   map[string]any{"name": "Sea to Sky"},
		},
	}

	svc := NewService(source, discardLogger())

	cleaned, err := svc.CurrentForecast(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cleaned)
	require.Equal(t, "J. Smith", cleaned.ReportMetadata.Forecaster)
	require.Equal(t, "Sea to Sky", cleaned.AreaName)
	require.Equal(t, 1, source.calls)
}

func TestServiceCurrentForecastFetchFailure(t *testing.T) {
	source := &stubSourceClient{err: errors.New("connection refused")}

	svc := NewService(source, discardLogger())

	_, err := svc.CurrentForecast(context.Background())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "upstream_error"))
	require.Contains(t, err.Error(), "Could not retrieve external forecast data")
	require.Contains(t, err.Error(), "connection refused")
}

func TestServiceCurrentForecastNoUsableData(t *testing.T) {
	source := &stubSourceClient{payload: map[string]any{"report": nil}}

	svc := NewService(source, discardLogger())

	_, err := svc.CurrentForecast(context.Background())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "no_data"))
	require.Equal(t, "No usable forecast data was found for this location or date.", err.Error())
}

type stubSourceClient struct {
	payload any
	err     error
	calls   int
}

func (s *stubSourceClient) FetchPoint(ctx context.Context) (any, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.payload, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
