package user

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	// SetCredentials stores the password hash and display name, completing
	// the placeholder-to-active transition.
	SetCredentials(ctx context.Context, id string, name string, passwordHash string) (User, error)
	UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (User, error)
	UpdateAvatar(ctx context.Context, id string, avatarURL string) (User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	Delete(ctx context.Context, id string) error
}
