package middleware

import (
	"net/http"
	"runtime/debug"

	"docuflow-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into 500 responses instead of dropping the
// connection, logging the stack for the crashed request.
func Recovery() gin.HandlerFunc {
	log := logger.New()

	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(map[string]interface{}{
					"request_id": c.GetString(RequestIDKey),
					"panic":      r,
					"stack":      string(debug.Stack()),
				}).Error("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":      "Internal server error",
					"request_id": c.GetString(RequestIDKey),
				})
			}
		}()

		c.Next()
	}
}
