package middleware

import (
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"cosmos-server/internal/shared/config"
)

type CORSMiddleware struct {
	*cors.Cors
}

var allowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}

func NewCORS(cfg config.FrontendConfig) *CORSMiddleware {
	logger := slog.With("component", "cors", "operation", "setup")

	allowedOrigins := []string{cfg.URL}

	corsConfig := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: allowedMethods,
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         600,
		Debug:          cfg.CORSDebug,
	})

	logger.Info("CORS middleware configured",
		"allowed_origins", allowedOrigins,
		"allowed_methods", allowedMethods,
		"debug_mode", cfg.CORSDebug,
	)

	return &CORSMiddleware{corsConfig}
}

func (c *CORSMiddleware) Middleware(h http.Handler) http.Handler {
	return c.Cors.Handler(h)
}
