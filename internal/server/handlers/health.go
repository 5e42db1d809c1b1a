package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"cosmos-server/internal/shared/response"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
	Redis     string `json:"redis"`
}

// Pinger is satisfied by *database.DB and *redis.Client. Both return an error when nil.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	redis Pinger
	now   func() time.Time
}

// NewHealthHandler takes nil for a dependency that is disabled.
func NewHealthHandler(db, redis Pinger) *HealthHandler {
	return &HealthHandler{db: db, redis: redis, now: time.Now}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "health")

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().Format(time.RFC3339),
		Database:  status(ctx, logger, "database", h.db),
		Redis:     status(ctx, logger, "redis", h.redis),
	}

	response.Success(w, http.StatusOK, resp)
}

func status(ctx context.Context, logger *slog.Logger, name string, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		logger.Warn("Dependency ping failed", "dependency", name, "error", err)
		return "disconnected"
	}
	return "connected"
}
