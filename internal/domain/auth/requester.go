package auth

import "github.com/teampulse/teampulse-backend-go/internal/domain/user"

// Requester is the authenticated identity extracted from a verified access
// token. It is all the assignment resolver knows about the caller.
type Requester struct {
	UserID string
	Email  string
	Role   user.Role
	Name   string
}
