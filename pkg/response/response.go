package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the body of every API response.
type Envelope struct {
	Status     string `json:"status"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message,omitempty"`
	Count      *int   `json:"count,omitempty"`
	Total      *int   `json:"total,omitempty"`
	Errors     any    `json:"errors,omitempty"`
	RedirectTo string `json:"redirectTo,omitempty"`
}

// Success writes a success envelope carrying data.
func Success(c *gin.Context, status int, data any) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, Envelope{Status: StatusSuccess, Data: data})
}

// SuccessMessage writes a success envelope carrying only a message.
func SuccessMessage(c *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, Envelope{Status: StatusSuccess, Message: message})
}

// List writes a success envelope for a collection. count is the number of
// items returned; total is the size of the unfiltered collection.
func List(c *gin.Context, data any, count, total int) {
	c.JSON(http.StatusOK, Envelope{Status: StatusSuccess, Data: data, Count: &count, Total: &total})
}

// Error writes an error envelope.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, NewError(message))
}

// Abort writes an error envelope and stops the handler chain.
func Abort(c *gin.Context, status int, env Envelope) {
	c.AbortWithStatusJSON(status, env)
}

// NewError builds an error envelope.
func NewError(message string) Envelope {
	return Envelope{Status: StatusError, Message: message}
}
