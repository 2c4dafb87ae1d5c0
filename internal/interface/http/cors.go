package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// corsMiddleware lets a separately hosted frontend call the API.
func corsMiddleware(allowed []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		MaxAge:       12 * time.Hour,
	}

	if allowsAnyOrigin(allowed) {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowed
	}

	return cors.New(cfg)
}

func allowsAnyOrigin(allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, origin := range allowed {
		if origin == "*" {
			return true
		}
	}
	return false
}
