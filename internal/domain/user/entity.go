package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, manages the admin registry
	RoleManager  Role = "manager"  // Can manage employees and tasks
	RoleEmployee Role = "employee" // Regular employee
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleManager || r == RoleEmployee
}

// User is the authentication/account entity. It is keyed by lower-cased
// email and is deliberately not foreign-keyed to the Employee profile that
// shares the same email.
type User struct {
	ID    string
	Name  string
	Email string
	// PasswordHash is nil while the account is a pre-provisioned
	// placeholder awaiting signup; a claimed account always has one.
	PasswordHash *string
	Role         Role
	AvatarURL    *string
	Department   *string
	Location     *string
	Bio          *string
	Phone        *string
	Skills       []string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsPlaceholder reports whether the account has been provisioned but not
// yet claimed through signup.
func (u *User) IsPlaceholder() bool {
	return u.PasswordHash == nil
}

// IsAdmin checks if user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is manager or admin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}
