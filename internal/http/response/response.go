package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error types surfaced to callers. Anything that is not a request-validation
// failure maps to TypeInternal, with no further classification.
const (
	TypeInvalidRequest = "invalid_request_error"
	TypeInternal       = "internal_server_error"
)

type APIError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type ErrorEnvelope struct {
	Type  string   `json:"type"`
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, errType string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Type: "error",
		Error: APIError{
			Type:    errType,
			Message: msg,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
