package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheckController answers liveness probes.
type HealthCheckController struct{}

// NewHealthCheckController creates a health check controller instance.
func NewHealthCheckController() *HealthCheckController {
	return &HealthCheckController{}
}

// Ping is the health check endpoint.
func (h *HealthCheckController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
		"status":  "healthy",
	})
}
