package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/muthomi-ke/land-platform/internal/platform/logger"
)

// Logging records one line per request with method, path, status, and
// duration.
func Logging(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()
		if status >= 500 {
			log.Error("HTTP request failed",
				"method", c.Request.Method, "path", c.Request.URL.Path,
				"status", status, "duration", duration.String())
			return
		}
		log.Info("HTTP request completed",
			"method", c.Request.Method, "path", c.Request.URL.Path,
			"status", status, "duration", duration.String())
	}
}
