package handlers

import (
	"net/http"
	"time"

	"github.com/agentstation/menumap/internal/server/response"
)

// HandleHealth handles GET /health.
// @Summary Health check
// @Description Health check endpoint (liveness probe)
// @Tags health
// @Produce json
// @Success 200 {object} object
// @Router /health [get].
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]any{
		"status":  "healthy",
		"service": "menumap",
		"version": h.version,
	})
}

// HandleReady handles GET /ready.
// The dataset is loaded before the listener starts, so a running server is
// always ready; the body reports what was loaded.
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} object
// @Router /ready [get].
func (h *Handlers) HandleReady(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]any{
		"status":      "ready",
		"restaurants": h.dataset.Len(),
		"layout":      h.dataset.Layout(),
		"uptime":      time.Since(h.startTime).Round(time.Second).String(),
	})
}
