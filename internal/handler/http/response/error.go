package response

import (
	"errors"
	"net/http"

	"github.com/kintai-app/timeclock-backend-go/internal/domain/auth"
	"github.com/kintai-app/timeclock-backend-go/internal/domain/employee"
	"github.com/kintai-app/timeclock-backend-go/internal/domain/timerecord"
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrSessionNotFound):
		Unauthorized(w, "Session not found or expired")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee ID already registered")

	// Time record domain errors
	case errors.Is(err, timerecord.ErrRecordNotFound):
		NotFound(w, "Time record not found")
	case errors.Is(err, timerecord.ErrNotClockedIn):
		BadRequest(w, "No clock-in recorded for today", nil)
	case errors.Is(err, timerecord.ErrInvalidAction):
		BadRequest(w, "Unknown correction action", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
