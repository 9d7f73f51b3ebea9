package employee

import (
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       user.Role `json:"role"`
	Department string    `json:"department"`
	AvatarURL  *string   `json:"avatar_url"`
	Location   *string   `json:"location"`
	Status     Status    `json:"status"`
	Skills     []string  `json:"skills"`
	Bio        *string   `json:"bio"`
	Phone      *string   `json:"phone"`
	Salary     *float64  `json:"salary"`
	StartDate  *string   `json:"start_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must be at least 2 characters long",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if r.Role == "" {
		r.Role = user.RoleEmployee
	}
	if !user.ValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of admin, manager, employee",
		})
	}

	if r.Status == "" {
		r.Status = StatusActive
	}
	if !ValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active, on-leave or inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest is a partial update; nil fields are left unchanged.
type UpdateEmployeeRequest struct {
	Name       *string   `json:"name"`
	Role       *user.Role `json:"role"`
	Department *string   `json:"department"`
	AvatarURL  *string   `json:"avatar_url"`
	Location   *string   `json:"location"`
	Status     *Status   `json:"status"`
	Skills     []string  `json:"skills"`
	Bio        *string   `json:"bio"`
	Phone      *string   `json:"phone"`
	Salary     *float64  `json:"salary"`
	StartDate  *string   `json:"start_date"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && len(*r.Name) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must be at least 2 characters long",
		})
	}
	if r.Role != nil && !user.ValidRole(*r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of admin, manager, employee",
		})
	}
	if r.Status != nil && !ValidStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active, on-leave or inactive",
		})
	}
	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
