package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/guidewire/core-auth-examples/pkg/api/handlers"
	"github.com/guidewire/core-auth-examples/pkg/client"
	"github.com/guidewire/core-auth-examples/pkg/utils"
)

// RequestID keeps the caller's X-Request-ID or assigns a new one, and echoes
// it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(client.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(handlers.RequestIDKey, id)
		c.Header(client.RequestIDHeader, id)
		c.Next()
	}
}

// AccessLog writes one line per request through the zerolog logger.
func AccessLog(log utils.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.InfoFields("request", utils.Fields{
			"request_id": c.GetString(handlers.RequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
		})
	}
}
