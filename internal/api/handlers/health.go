package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"control-room-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

const checkTimeout = 2 * time.Second

type healthCheck struct {
	name string
	run  func(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	checks []healthCheck
}

// NewHealthHandler creates a health handler that probes the database and its schema
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		checks: []healthCheck{
			{name: "database", run: func(ctx context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			}},
			{name: "schema", run: func(ctx context.Context) error {
				if !db.WithContext(ctx).Migrator().HasTable(&models.Shift{}) {
					return fmt.Errorf("table %s is missing", models.Shift{}.TableName())
				}
				return nil
			}},
		},
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// runChecks runs every check and reports per-service results
func (h *HealthHandler) runChecks(ctx context.Context, okLabel string) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	healthy := true
	services := make(map[string]string, len(h.checks))
	for _, check := range h.checks {
		if err := check.run(ctx); err != nil {
			healthy = false
			services[check.name] = "error: " + err.Error()
			continue
		}
		services[check.name] = okLabel
	}
	return services, healthy
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	services, healthy := h.runChecks(c.Request.Context(), "healthy")

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   Version,
		Services:  services,
	}
	statusCode := http.StatusOK
	if !healthy {
		response.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready reports whether the control room can be served, i.e. the database answers and is migrated
// @Summary Readiness check
// @Description Check if the application is ready to serve requests
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	services, ready := h.runChecks(c.Request.Context(), "ready")

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, gin.H{
		"ready":     ready,
		"timestamp": time.Now().UTC(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now().UTC(),
	})
}
