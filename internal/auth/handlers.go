package auth

import (
	"net/http"

	apperrors "control-room-backend/internal/errors"
	"control-room-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login exchanges operator credentials for an access token
// @Summary Obtain access token
// @Description Verify username and password and return a bearer token. Accepts form fields or JSON.
// @Tags authentication
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} TokenResponse "Access token"
// @Failure 400 {object} map[string]interface{} "Missing credentials"
// @Failure 401 {object} map[string]interface{} "Invalid username or password"
// @Router /token [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.service.Login(c, req.Username, req.Password)
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			logger.WithContext(c).WithField("username", req.Username).Warn("rejected login")
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, token)
}

// ValidateToken validates the bearer token of the request and returns its claims
// @Summary Validate JWT token
// @Description Validate the bearer token and return its claims
// @Tags authentication
// @Produce json
// @Success 200 {object} map[string]interface{} "Token is valid with claims"
// @Failure 401 {object} map[string]interface{} "Authorization header required or token invalid"
// @Security BearerAuth
// @Router /token/validate [get]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "claims": claims})
}
