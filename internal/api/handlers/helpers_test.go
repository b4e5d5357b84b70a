package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"

	"control-room-backend/internal/auth"
	"control-room-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// authenticatedAs stands in for the JWT middleware in handler tests
func authenticatedAs(userID uuid.UUID, role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.SetClaims(c, &auth.AuthClaims{
			UserID:   userID.String(),
			Username: "tester",
			Role:     role,
		})
		c.Next()
	}
}

// performRequest sends body as JSON, or verbatim when it is a string
func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
