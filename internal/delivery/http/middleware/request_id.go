package middleware

import (
	"context"
	"log/slog"
	"time"

	"go-form-relay/internal/domain"
	"go-form-relay/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an ID, reusing a well-formed inbound X-Request-ID.
// The ID is stored on the gin context and on the request context for logger.FromContext.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(string(domain.KeyRequestID), id)
		ctx := context.WithValue(c.Request.Context(), domain.KeyRequestID, id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequestLogger writes one structured line per request through pkg/logger.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= 500 {
			level = slog.LevelError
		} else if c.Writer.Status() >= 400 {
			level = slog.LevelWarn
		}
		logger.FromContext(c.Request.Context()).Log(c.Request.Context(), level, "HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}
