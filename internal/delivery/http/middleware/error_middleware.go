package middleware

import (
	"errors"

	"go-form-relay/internal/delivery/http/response"
	"go-form-relay/pkg/apperror"
	"go-form-relay/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log := logger.FromContext(c.Request.Context())

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			// Never expose internal error details to clients
			appErr = apperror.Internal(err)
		}
		if appErr.Err != nil {
			log.Error("Request failed",
				"path", c.FullPath(),
				"status", appErr.Code,
				"error", appErr.Err,
			)
		}
		response.Error(c, appErr.Code, appErr.Message)
	}
}
