package middleware

import (
	"crypto/subtle"
	"net/http"

	"boilertech/config"

	"github.com/gin-gonic/gin"
)

// APIKeyAuthMiddleware rejects requests that do not carry the configured API
// key in the X-API-Key header.
func APIKeyAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-API-Key")
		expected := config.AppConfig.APIKey
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing API key"})
			return
		}
		c.Next()
	}
}
