package auth

import (
	"net/http"
	"slices"
	"strings"

	"control-room-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// Keys under which RequireAuth stores the caller on the gin context
const (
	userIDKey   = "user_id"
	usernameKey = "username"
	roleKey     = "role"
	claimsKey   = "auth_claims"
)

func abortWithError(c *gin.Context, status int, body gin.H) {
	c.AbortWithStatusJSON(status, body)
}

// RequireAuth accepts "Authorization: Bearer <jwt>" and stores the caller on the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortWithError(c, http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			abortWithError(c, http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := m.service.ValidateJWT(token)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			return
		}

		SetClaims(c, claims)
		c.Next()
	}
}

// SetClaims stores validated claims on the request context
func SetClaims(c *gin.Context, claims *AuthClaims) {
	// ValidateJWT already checked the id parses
	userID, _ := uuid.Parse(claims.UserID)

	c.Set(userIDKey, userID)
	c.Set(usernameKey, claims.Username)
	c.Set(roleKey, claims.Role)
	c.Set(claimsKey, claims)
}

// RequireRole rejects authenticated users whose role is not in roles
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			abortWithError(c, http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !slices.Contains(roles, role) {
			abortWithError(c, http.StatusForbidden, gin.H{"error": "Role " + string(role) + " is not allowed for this resource"})
			return
		}
		c.Next()
	}
}

func contextValue[T any](c *gin.Context, key string) (T, bool) {
	var zero T
	raw, exists := c.Get(key)
	if !exists {
		return zero, false
	}
	value, ok := raw.(T)
	return value, ok
}

// GetUserID returns the authenticated user's id
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	return contextValue[uuid.UUID](c, userIDKey)
}

// GetUsername returns the authenticated user's login name
func GetUsername(c *gin.Context) (string, bool) {
	return contextValue[string](c, usernameKey)
}

// GetRole returns the authenticated user's role
func GetRole(c *gin.Context) (models.UserRole, bool) {
	return contextValue[models.UserRole](c, roleKey)
}

func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	return contextValue[*AuthClaims](c, claimsKey)
}
