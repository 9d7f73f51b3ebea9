package user

import "github.com/teampulse/teampulse-backend-go/internal/pkg/validator"

// UpdateProfileRequest carries the fields a user may change on their own
// account. All fields are optional; nil means "leave unchanged".
type UpdateProfileRequest struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Department *string `json:"department"`
	Location   *string `json:"location"`
	Bio        *string `json:"bio"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) < 2 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must be at least 2 characters long",
			})
		}
		if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 255 characters",
			})
		}
	}
	if r.Bio != nil && len(*r.Bio) > 2000 {
		errs = append(errs, validator.ValidationError{
			Field:   "bio",
			Message: "bio must not exceed 2000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Profile is the safe projection of a User returned by the API; it never
// carries the password hash.
type Profile struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Role       Role     `json:"role"`
	AvatarURL  *string  `json:"avatar_url,omitempty"`
	Department *string  `json:"department,omitempty"`
	Location   *string  `json:"location,omitempty"`
	Bio        *string  `json:"bio,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Status     string   `json:"status,omitempty"`
}

// ToProfile converts a User into its API projection.
func ToProfile(u User) Profile {
	return Profile{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		AvatarURL:  u.AvatarURL,
		Department: u.Department,
		Location:   u.Location,
		Bio:        u.Bio,
		Phone:      u.Phone,
		Skills:     u.Skills,
		Status:     u.Status,
	}
}
