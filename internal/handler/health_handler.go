package handler

import (
	"context"
	"net/http"
	"time"

	"voting-be/internal/container"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	container *container.Container
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(container *container.Container) *HealthHandler {
	return &HealthHandler{
		container: container,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Database  string    `json:"database"`
	Cache     string    `json:"cache,omitempty"`
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   "voting-be",
		Database:  "up",
	}
	status := http.StatusOK

	if err := h.container.DB.Health(ctx); err != nil {
		h.container.GetLogger().WithError(err).Error("Database health check failed")
		response.Status = "unhealthy"
		response.Database = "down"
		status = http.StatusServiceUnavailable
	}

	if h.container.HasRedis() {
		response.Cache = "up"
		if err := h.container.GetRedisClient().Health(ctx); err != nil {
			h.container.GetLogger().WithError(err).Warn("Redis health check failed")
			response.Cache = "down"
		}
	}

	respondJSON(w, status, response)
}
