package http

import (
	"net/http"
	"time"

	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/api/respond"
)

// HealthReporter exposes cached component health (see store.HealthChecker).
type HealthReporter interface {
	IsHealthy() bool
}

// HealthHandler handles the service info and health endpoints.
type HealthHandler struct {
	store HealthReporter
}

func NewHealthHandler(store HealthReporter) *HealthHandler {
	return &HealthHandler{store: store}
}

// Root GET /api/
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Emergency Response API",
		"status":  "active",
	})
}

// CheckHealth GET /api/health
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	if h.store == nil || h.store.IsHealthy() {
		respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"status":    "UP",
			"message":   "Service is healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"status":    "DOWN",
		"message":   "store unavailable",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
