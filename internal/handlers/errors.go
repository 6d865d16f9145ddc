package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// ErrorResponse is the JSON error envelope every endpoint answers with:
// {"error": "<human-readable text>"}. It replaces huma's default RFC 7807
// body so the contract is explicit at the boundary.
type ErrorResponse struct {
	status  int
	Message string `json:"error" doc:"Human-readable error message"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

// GetStatus returns the HTTP status code for this error.
func (e *ErrorResponse) GetStatus() int {
	return e.status
}

// ContentType keeps error bodies on plain application/json.
func (e *ErrorResponse) ContentType(ct string) string {
	if ct == "application/problem+json" {
		return "application/json"
	}

	return ct
}

func init() {
	huma.NewError = func(status int, message string, _ ...error) huma.StatusError {
		if message == "" {
			message = http.StatusText(status)
		}

		return &ErrorResponse{status: status, Message: message}
	}
}
