package middleware

import (
	"time"

	"call2fa/pkg/logger"

	"github.com/gin-gonic/gin"
)

func LoggingMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		log.Printf("%s %s %d %v request_id=%s", method, path, status, latency, c.GetString(requestIDKey))
	}
}
