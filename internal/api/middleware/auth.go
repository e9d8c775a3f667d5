package middleware

import (
	"crypto/subtle"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/rustyreel/internal/config"
	"github.com/denisAlshanov/rustyreel/internal/utils"
)

// APIKeyMiddleware requires a matching X-API-Key header when an API key is
// configured. With no key configured every request passes.
func APIKeyMiddleware(cfg *config.APIConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.APIKey == "" {
			c.Next()
			return
		}

		apiKey := c.GetHeader("X-API-Key")
		if apiKey != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(cfg.APIKey)) == 1 {
			c.Next()
			return
		}

		utils.LogWarn(c.Request.Context(), "Rejected request with invalid API key", utils.Fields{
			"path": c.Request.URL.Path,
			"ip":   c.ClientIP(),
		})

		c.JSON(401, gin.H{
			"error":      utils.NewUnauthorizedError(),
			"request_id": c.GetString("request_id"),
			"timestamp":  time.Now().Format(time.RFC3339),
		})
		c.Abort()
	}
}
