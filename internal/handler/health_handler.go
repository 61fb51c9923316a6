package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MischieS/agenta-sub001/pkg/database"
	"github.com/MischieS/agenta-sub001/pkg/redis"
	"github.com/MischieS/agenta-sub001/pkg/response"
)

// HealthHandler reports process and dependency health
type HealthHandler struct {
	db      *database.PostgresDB
	redis   *redis.Client
	version string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *database.PostgresDB, redisClient *redis.Client, version string) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient, version: version}
}

// Health checks dependencies and reports overall status
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	checks := gin.H{}
	healthy := true

	if err := h.db.HealthCheck(ctx); err != nil {
		checks["postgres"] = "down"
		healthy = false
	} else {
		checks["postgres"] = "up"
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx); err != nil {
			checks["redis"] = "down"
			healthy = false
		} else {
			checks["redis"] = "up"
		}
	}

	status := "healthy"
	code := http.StatusOK
	if !healthy {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":  status,
		"version": h.version,
		"checks":  checks,
	})
}

// Ready is a liveness probe that never touches dependencies
// GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	response.Success(c, gin.H{"ready": true})
}
