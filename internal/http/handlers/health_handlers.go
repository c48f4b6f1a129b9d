package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// HealthHandler answers liveness probes.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"}, http.Header{
		"Cache-Control": []string{"no-store"},
	}); err != nil {
		logger.Debug("failed to write health response", zap.Error(err))
	}
}
