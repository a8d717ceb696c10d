package middleware

import (
	"net/http"
	"strings"

	"enlistco_backend/internal/auth"
	"enlistco_backend/internal/logger"
	"enlistco_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and resolves it to a
// stored user. The three failure modes are distinct: missing
// credential (401), invalid/expired credential (403), and a valid
// credential whose user no longer exists (404).
func AuthMiddleware(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := userRepo.FindByEmail(claims.Email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User no longer exists"})
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.Email)
		c.Request = c.Request.WithContext(ctx)

		c.Set("userEmail", user.Email)
		c.Set("isAdmin", user.Admin)
		c.Next()
	}
}

// AdminMiddleware gates a route group to administrators. Must run
// after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("isAdmin")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no role"})
			return
		}

		admin, ok := isAdmin.(bool)
		if !ok || !admin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: administrator only"})
			return
		}

		c.Next()
	}
}

// GetUserEmail extracts the authenticated email from the context.
func GetUserEmail(c *gin.Context) string {
	emailVal, exists := c.Get("userEmail")
	if !exists {
		return ""
	}

	email, ok := emailVal.(string)
	if !ok {
		return ""
	}
	return email
}
