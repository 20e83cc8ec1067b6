package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root is the unauthenticated banner probe.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "PlanWise Backend API is running!",
		"status":  "healthy",
	})
}

// HealthCheck is the unauthenticated liveness probe.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
