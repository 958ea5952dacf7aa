// internal/pkg/response/response.go
package response

import (
	"net/http"

	xerrors "customer-datatable/internal/pkg/errors"

	"github.com/gin-gonic/gin"
)

// StatusSuccess is the status of a successful write envelope.
const StatusSuccess = "success"

// Messages returned in error bodies. They are part of the wire contract.
const (
	MessageInternalError = "Internal Server Error"
	MessageBadRequest    = "Bad Request"
	MessageTooMany       = "Too Many Requests"
)

// ErrorBody is the body of every error response: {"error": "..."}.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes data as-is. Used for list endpoints that return bare arrays.
func JSON(c *gin.Context, status int, data interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, data)
}

// Error sends a standardized error response.
func Error(c *gin.Context, code int, message string) {
	// Abort first so later handlers never write over the error body.
	c.Abort()
	c.JSON(code, ErrorBody{Error: message})
}

// FromError attaches err to the context for the request log and maps it to
// a public status and message. Unknown errors become 500.
func FromError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case xerrors.Is(err, xerrors.ErrBadRequest):
		BadRequest(c)
	case xerrors.Is(err, xerrors.ErrRateLimited):
		TooManyRequests(c)
	default:
		InternalError(c)
	}
}

// InternalError sends a 500 with the fixed public message. Details stay in the logs.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, MessageInternalError)
}

// BadRequest sends a 400 for a body that could not be parsed.
func BadRequest(c *gin.Context) {
	Error(c, http.StatusBadRequest, MessageBadRequest)
}

// TooManyRequests sends a 429.
func TooManyRequests(c *gin.Context) {
	Error(c, http.StatusTooManyRequests, MessageTooMany)
}
