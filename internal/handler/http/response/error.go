package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/working-date-go/internal/domain/task"
	"github.com/cmlabs-hris/working-date-go/internal/domain/workingdate"
	"github.com/cmlabs-hris/working-date-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")

	// Working date domain errors
	case errors.Is(err, workingdate.ErrHolidaysUnavailable):
		ServiceUnavailable(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

// Error codes of the working-date API.
const (
	CodeInvalidParameters   = "InvalidParameters"
	CodeUpstreamUnavailable = "UpstreamUnavailable"
	CodeInternalError       = "InternalError"
)

// APIError is the flat error body of the working-date API.
type APIError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HandleAPIError writes err using the flat working-date error body:
// 400 for invalid parameters, 503 when holidays cannot be loaded, else 500.
func HandleAPIError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		JSON(w, http.StatusBadRequest, APIError{Error: CodeInvalidParameters, Message: validationErrs.First()})
	case errors.Is(err, workingdate.ErrHolidaysUnavailable):
		JSON(w, http.StatusServiceUnavailable, APIError{Error: CodeUpstreamUnavailable, Message: err.Error()})
	default:
		JSON(w, http.StatusInternalServerError, APIError{Error: CodeInternalError, Message: "An unexpected error occurred"})
	}
}
