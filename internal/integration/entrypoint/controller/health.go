// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController answers liveness probes. The database check is injected
// so the controller stays unaware of the storage backend.
type HealthController struct {
	checkDatabase func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(checkDatabase func() bool) *HealthController {
	return &HealthController{
		checkDatabase: checkDatabase,
	}
}

// Check handles GET /health requests. The endpoint itself always answers
// 200; the body reports whether the database is reachable.
func (h *HealthController) Check(c *gin.Context) {
	database := "disconnected"
	if h.checkDatabase != nil && h.checkDatabase() {
		database = "connected"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Database:  database,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
