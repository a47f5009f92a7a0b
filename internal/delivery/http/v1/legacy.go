package v1

import (
	"errors"

	"go-diettrack-backend/pkg/apperror"
	"go-diettrack-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// The diet endpoints predate the error middleware and answer failures as
// HTTP 200 with {success:false, message}, so existing pages keep working.
// Two documented exceptions stay 400: sign-up that yields no user, and an
// unknown goal name during onboarding.

type failureEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// legacyFailure writes the historical failure shape and logs the wrapped
// cause, which is never sent to the client.
func legacyFailure(c *gin.Context, status int, err error) {
	logFailure(c, err)
	c.JSON(status, failureEnvelope{Success: false, Message: err.Error()})
}

func logFailure(c *gin.Context, err error) {
	reqID, _ := c.Get("RequestID")

	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Err != nil {
		logger.Log.Warn("request failed",
			"path", c.FullPath(), "request_id", reqID,
			"message", appErr.Message, "cause", appErr.Err)
		return
	}
	logger.Log.Warn("request failed",
		"path", c.FullPath(), "request_id", reqID, "error", err)
}
