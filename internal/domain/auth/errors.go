package auth

import (
	"errors"
	"fmt"

	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
)

var (
	// Login flow
	ErrAccountNotFound  = errors.New("account not found, please sign up first")
	ErrNotActivated     = errors.New("account not activated, please sign up first")
	ErrWrongCredentials = errors.New("wrong password, please try again")
	ErrInvalidToken     = errors.New("invalid or expired token")

	// Signup flow
	ErrNotAuthorized     = errors.New("this email is not authorized for signup, please contact the administrator")
	ErrAlreadyRegistered = errors.New("an account already exists with this email")

	// Provisioning
	ErrDuplicateEmail = errors.New("an active account already exists for this email")
)

// RoleMismatchError is returned when a signup requests a role different from
// the one the placeholder account was provisioned with. It reports the actual
// role so the caller can pick the right one.
type RoleMismatchError struct {
	Email     string
	Requested user.Role
	Actual    user.Role
}

func (e *RoleMismatchError) Error() string {
	return fmt.Sprintf("this email is registered as a %s, not a %s, please select the correct role or contact the administrator", e.Actual, e.Requested)
}
