package middleware

import (
	"net/http"
	"strings"

	"gamerate/internal/httpapi/models"
	"gamerate/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and stores the caller's identity
// in the request context for handlers to read.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("isAdmin", claims.Role == models.RoleAdmin)

		c.Next()
	}
}

// RequireAdmin rejects callers whose token does not carry the admin role.
// It must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("isAdmin")
		if !exists || !isAdmin.(bool) {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CallerIdentity reads the identity AuthMiddleware stored on the context.
func CallerIdentity(c *gin.Context) (userID int64, isAdmin bool, ok bool) {
	idValue, exists := c.Get("userID")
	if !exists {
		return 0, false, false
	}
	userID, ok = idValue.(int64)
	if !ok {
		return 0, false, false
	}
	if adminValue, exists := c.Get("isAdmin"); exists {
		isAdmin, _ = adminValue.(bool)
	}
	return userID, isAdmin, true
}
