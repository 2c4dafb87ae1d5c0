package http

import (
	"net/http"
	"path/filepath"
	"time"

	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/granitechief/avybrief/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.CustomRecovery(panicHandler(handler.logger)),
		requestIDMiddleware(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
	)

	router.StaticFile("/", filepath.Join(cfg.Web.Dir, "index.html"))
	router.GET("/health", handler.Health)

	api := router.Group("/api")
	{
		api.GET("/avdata", handler.ForecastData)
		api.POST("/llmsummary", handler.LLMSummary)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "latency_ms", latency.Milliseconds(), "request_id", requestID(c))
	}
}

// panicHandler keeps unexpected faults inside the JSON contract instead of
// letting gin emit an empty 500.
func panicHandler(logger *slog.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		logger.Error("request panicked", "path", c.Request.URL.Path, "request_id", requestID(c), "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
