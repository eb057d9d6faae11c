package handlers

import (
	"net/http"
	"os"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/version"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	dataDir string
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(dataDir string) *SystemHandler {
	return &SystemHandler{
		dataDir: dataDir,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Error   string `json:"error,omitempty"`
}

// Health checks the health of the system and the store directory
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(h.dataDir); err != nil {
		response := HealthResponse{
			Status:  "unhealthy",
			Storage: "unavailable",
			Error:   err.Error(),
		}
		respondJSON(w, http.StatusServiceUnavailable, response)
		return
	}

	response := HealthResponse{
		Status:  "healthy",
		Storage: "available",
	}
	respondJSON(w, http.StatusOK, response)
}

// Version reports the application version
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"version": version.Version,
	})
}
