package response

import (
	"errors"
	"net/http"

	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/attendance"
	"github.com/smilepoint-dental/clinic-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Input contract violations are the caller's fault and fail loud.
	switch {
	case errors.Is(err, attendance.ErrMalformedTime):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrClockOutBeforeClockIn):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrNegativeInput):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
