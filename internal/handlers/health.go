package handlers

import (
	"context"
	"net/http"
	"time"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler provides health check endpoint
type HealthHandler struct {
	store Pinger
	Responder
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store Pinger, rs Responder) *HealthHandler {
	return &HealthHandler{
		store:     store,
		Responder: rs,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// ServeHTTP handles health check requests. The process answers OK as long as
// it is serving; store reachability is reported alongside.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	database := "connected"
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.store.Ping(ctx); err != nil {
		h.Log.Warn("health check: store unreachable", "error", err)
		database = "unavailable"
	}

	h.JSON(w, http.StatusOK, HealthResponse{
		Status:    "OK",
		Message:   "Server is running",
		Database:  database,
		Timestamp: time.Now().UTC(),
	})
}
