package response

import (
	"errors"
	"net/http"

	"github.com/teampulse/teampulse-backend-go/internal/domain/auth"
	"github.com/teampulse/teampulse-backend-go/internal/domain/employee"
	"github.com/teampulse/teampulse-backend-go/internal/domain/task"
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var roleMismatch *auth.RoleMismatchError
	if errors.As(err, &roleMismatch) {
		ForbiddenWithDetails(w, "ROLE_MISMATCH", roleMismatch.Error(), map[string]string{
			"requested_role": string(roleMismatch.Requested),
			"actual_role":    string(roleMismatch.Actual),
			"contact_admin":  "true",
		})
		return
	}

	var notAssigned *task.NotAssignedError
	if errors.As(err, &notAssigned) {
		ForbiddenWithDetails(w, "NOT_ASSIGNED", notAssigned.Error(), notAssigned.Details())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrAccountNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, auth.ErrNotActivated):
		ForbiddenWithDetails(w, "NOT_ACTIVATED", err.Error(), map[string]string{
			"needs_signup": "true",
		})
	case errors.Is(err, auth.ErrWrongCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrNotAuthorized):
		ForbiddenWithDetails(w, "NOT_AUTHORIZED", err.Error(), map[string]string{
			"contact_admin": "true",
		})
	case errors.Is(err, auth.ErrAlreadyRegistered):
		Conflict(w, err.Error())
	case errors.Is(err, auth.ErrDuplicateEmail):
		Conflict(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrProtectedAdmin):
		Forbidden(w, "This administrator account is protected and cannot be removed")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrAlreadySubmitted):
		Conflict(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
