package middleware

import (
	"errors"
	"net/http"

	"go-diettrack-backend/internal/delivery/http/response"
	"go-diettrack-backend/pkg/apperror"
	"go-diettrack-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors attached to the gin context onto the response
// envelope. The legacy endpoints answer errors inline to keep their wire
// shape, so this mostly serves the newer routes.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// Never expose internal error details to clients; log the
				// real cause server-side.
				logger.Log.Error("unhandled error", "error", err, "path", c.FullPath())
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
