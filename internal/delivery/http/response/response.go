package response

import (
	"github.com/gin-gonic/gin"
)

// RequestIDHeader echoes the per-request ID back to the client
const RequestIDHeader = "X-Request-ID"

// Success sends a plain text success message
func Success(c *gin.Context, code int, message string) {
	setRequestID(c)
	c.String(code, message)
}

// Error sends a plain text error message
func Error(c *gin.Context, code int, message string) {
	setRequestID(c)
	c.String(code, message)
}

func setRequestID(c *gin.Context) {
	reqID, _ := c.Get("RequestID")
	if idStr, ok := reqID.(string); ok && idStr != "" {
		c.Header(RequestIDHeader, idStr)
	}
}
