// Package handlers provides HTTP request handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"floorspace/internal/metadata"
)

// Version is set at build time.
var Version = "0.1.0"

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	registry *metadata.Registry
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(registry *metadata.Registry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Info returns application information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":     "floorspace",
		"version": Version,
		"metadata": map[string]any{
			"entity_types": len(h.registry.List()),
			"creatable":    len(h.registry.Creatable()),
		},
	})
}
