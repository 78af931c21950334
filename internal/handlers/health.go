package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"waveai-backend/internal/models"
)

type HealthHandler struct {
	ai Generator
}

func NewHealthHandler(ai Generator) *HealthHandler {
	return &HealthHandler{ai: ai}
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		AIOnline:  h.ai != nil,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
