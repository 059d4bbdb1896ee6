package apierr

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
)

// APIError is the JSON error envelope returned by every endpoint.
type APIError struct {
	status  int
	Message string   `json:"error" doc:"Human readable error message"`
	Details []string `json:"details,omitempty" doc:"Field level validation problems"`
	cause   error
}

func (e *APIError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *APIError) GetStatus() int {
	return e.status
}

// Unwrap exposes the underlying cause for logging, never for the client.
func (e *APIError) Unwrap() error {
	return e.cause
}

// New builds an APIError. Schema validation details reported by huma are
// surfaced, other errors are kept as the unexported cause.
func New(status int, msg string, errs ...error) huma.StatusError {
	apiErr := &APIError{status: status, Message: msg}

	var causes []error
	for _, err := range errs {
		if err == nil {
			continue
		}
		var detailer huma.ErrorDetailer
		if errors.As(err, &detailer) {
			apiErr.Details = append(apiErr.Details, detailer.ErrorDetail().Error())
			continue
		}
		causes = append(causes, err)
	}
	apiErr.cause = errors.Join(causes...)

	return apiErr
}

// Install makes huma produce APIError bodies for every error response.
func Install() {
	huma.NewError = New
}
