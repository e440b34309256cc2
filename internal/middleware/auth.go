package middleware

import (
	"net/http"
	"strings"

	"call2fa/internal/auth"

	"github.com/gin-gonic/gin"
)

const loginKey = "login"

// AuthMiddleware requires an "Authorization: Bearer <jwt>" header signed with secret.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		claims, err := auth.ValidateJWT(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(loginKey, claims.Login)
		c.Next()
	}
}

// Login returns the account login stored by AuthMiddleware.
func Login(c *gin.Context) string {
	return c.GetString(loginKey)
}
