package middleware

import (
	"time"

	"docuflow-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Logger logs one structured line per request after the handler chain ran,
// so the final status code and latency are captured.
func Logger() gin.HandlerFunc {
	log := logger.New()

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		entry := log.WithFields(map[string]interface{}{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": float64(time.Since(start).Microseconds()) / 1000.0,
			"client_ip":  c.ClientIP(),
		})

		if len(c.Errors) > 0 {
			entry.Error(c.Errors.String())
			return
		}
		entry.Info("request completed")
	}
}
