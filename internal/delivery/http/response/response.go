package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the generic envelope used by the maintenance routes and by
// the error middleware. The diet endpoints keep their own historical wire
// shapes and do not go through this type.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)
	return idStr
}
