package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthRouter(checks ...healthCheck) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := &HealthHandler{checks: checks}

	router := gin.New()
	router.GET("/health", handler.Health)
	router.GET("/health/ready", handler.Ready)
	router.GET("/health/live", handler.Live)
	return router
}

func passing(name string) healthCheck {
	return healthCheck{name: name, run: func(context.Context) error { return nil }}
}

func TestHealthAllChecksPass(t *testing.T) {
	router := healthRouter(passing("database"), passing("schema"))

	w := performRequest(router, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var response HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, Version, response.Version)
	assert.Equal(t, map[string]string{"database": "healthy", "schema": "healthy"}, response.Services)
}

func TestHealthFailingCheck(t *testing.T) {
	router := healthRouter(passing("database"), healthCheck{
		name: "schema",
		run:  func(context.Context) error { return errors.New("table shifts is missing") },
	})

	w := performRequest(router, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var response HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, "healthy", response.Services["database"])
	assert.Contains(t, response.Services["schema"], "shifts")
}

func TestReadyHonoursDeadline(t *testing.T) {
	router := healthRouter(healthCheck{
		name: "database",
		run: func(ctx context.Context) error {
			_, ok := ctx.Deadline()
			if !ok {
				return errors.New("no deadline")
			}
			return nil
		},
	})

	w := performRequest(router, http.MethodGet, "/health/ready", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["ready"])
}

func TestLive(t *testing.T) {
	router := healthRouter()

	w := performRequest(router, http.MethodGet, "/health/live", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"alive":true`)
}
