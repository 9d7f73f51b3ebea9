package fixtures

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/teampulse/teampulse-backend-go/internal/config"
	"github.com/teampulse/teampulse-backend-go/internal/domain/auth"
)

// SeedProtectedAdmins makes sure every protected admin email has at least a
// placeholder account, so the registry is never empty on a fresh install.
// Provisioning is idempotent; re-running at every startup is safe.
func SeedProtectedAdmins(ctx context.Context, cfg *config.Config, authService auth.AuthService) error {
	for _, email := range cfg.Admin.ProtectedEmails {
		u, err := authService.ProvisionAdmin(ctx, auth.AddAdminEmailRequest{Email: email})
		if err != nil {
			if err == auth.ErrDuplicateEmail {
				// Already claimed as an active admin account.
				continue
			}
			return fmt.Errorf("failed to seed protected admin %s: %w", email, err)
		}
		slog.Info("protected admin account ensured", "email", email, "user_id", u.ID)
	}
	return nil
}
