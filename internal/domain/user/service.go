package user

import (
	"context"
	"io"
)

type AccountService interface {
	// GetProfile returns the authenticated user's own profile.
	GetProfile(ctx context.Context, userID string) (Profile, error)

	// UpdateProfile changes the authenticated user's own profile and mirrors
	// the shared fields onto the matching Employee record, if one exists.
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (Profile, error)

	// UpdateAvatar stores a new profile picture and records its URL on both
	// identity records.
	UpdateAvatar(ctx context.Context, userID string, file io.Reader, filename string) (Profile, error)
}
