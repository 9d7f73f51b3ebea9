package employee

import (
	"time"

	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusOnLeave  Status = "on-leave"
	StatusInactive Status = "inactive"
)

// ValidStatus reports whether s is one of the known statuses.
func ValidStatus(s Status) bool {
	return s == StatusActive || s == StatusOnLeave || s == StatusInactive
}

// Employee is the HR profile entity. It shares an email with a User account
// but no referential constraint ties the two records together; the
// assignment resolver reconciles them at read time.
type Employee struct {
	ID         string
	Name       string
	Email      string
	Role       user.Role
	Department string
	AvatarURL  *string
	Location   *string
	Status     Status
	Skills     []string
	Bio        *string
	Phone      *string
	Salary     *float64
	StartDate  *string
	JoinedAt   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
