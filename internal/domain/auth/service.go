package auth

import (
	"context"

	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
)

// AuthService drives the account activation state machine:
// unprovisioned -> placeholder (Provision) -> active (Signup claim).
type AuthService interface {
	// Signup claims a pre-provisioned placeholder account, setting the
	// real password and issuing a session token.
	Signup(ctx context.Context, req SignupRequest) (TokenResponse, error)
	// Login authenticates an active account.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// ProvisionAdmin creates an admin placeholder account awaiting signup.
	ProvisionAdmin(ctx context.Context, req AddAdminEmailRequest) (user.User, error)
	// IsAdminEmailAuthorized reports whether email may complete an admin
	// signup.
	IsAdminEmailAuthorized(ctx context.Context, email string) (bool, error)
	// ListAdmins returns all admin accounts, claimed or placeholder.
	ListAdmins(ctx context.Context) ([]user.User, error)
	// RemoveAdmin deletes an admin account unless it is protected.
	RemoveAdmin(ctx context.Context, id string) error
}
