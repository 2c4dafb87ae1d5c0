package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/granitechief/avybrief/internal/domain/briefing"
	"github.com/granitechief/avybrief/internal/domain/forecast"
	apperrors "github.com/granitechief/avybrief/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	forecastSvc forecast.Service
	briefingSvc briefing.Service
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(forecastSvc forecast.Service, briefingSvc briefing.Service, logger *slog.Logger) *Handler {
	return &Handler{
		forecastSvc: forecastSvc,
		briefingSvc: briefingSvc,
		logger:      logger.With("component", "http.handler"),
	}
}

// Health reports liveness for deployment probes.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ForecastData fetches and cleans the current forecast for the configured
// location.
func (h *Handler) ForecastData(c *gin.Context) {
	cleaned, err := h.forecastSvc.CurrentForecast(c.Request.Context())
	if err != nil {
		status := http.StatusInternalServerError
		code := apperrors.CodeOf(err)
		if code == "no_data" {
			status = http.StatusNotFound
		}
		if code == "" {
			code = "forecast_failed"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"cleanedData": cleaned})
}

// LLMSummary generates a safety briefing from a cleaned forecast the client
// echoes back. Generation failures still produce a 200 with descriptive text;
// only a missing payload or an unreadable body is an HTTP error.
func (h *Handler) LLMSummary(c *gin.Context) {
	var req briefing.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "server_error", "Failed to generate LLM summary due to server error: "+err.Error(), err))
		return
	}

	resp, err := h.briefingSvc.Summary(c.Request.Context(), req)
	if err != nil {
		if apperrors.CodeOf(err) == "missing_payload" {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "missing_payload", errMessage(err), err))
			return
		}
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "server_error", "Failed to generate LLM summary due to server error: "+err.Error(), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
