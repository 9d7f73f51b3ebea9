package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/teampulse/teampulse-backend-go/internal/config"
	"github.com/teampulse/teampulse-backend-go/internal/domain/auth"
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/jwt"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/validator"
)

const bcryptCost = 12

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	cfg *config.Config
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service, cfg *config.Config) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		cfg:            cfg,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (a *AuthServiceImpl) issueToken(u user.User) (auth.TokenResponse, error) {
	token, expiresAt, err := a.Service.GenerateAccessToken(u.ID, u.Email, u.Role, u.Name)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	return auth.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.ToProfile(u),
	}, nil
}

// Signup implements auth.AuthService. It performs the Claim transition:
// a placeholder account provisioned for this email becomes active with a
// real password.
func (a *AuthServiceImpl) Signup(ctx context.Context, req auth.SignupRequest) (auth.TokenResponse, error) {
	// Self-service signup only exists for pre-provisioned roles; managers
	// are promoted by an administrator, never self-registered.
	if req.Role != user.RoleAdmin && req.Role != user.RoleEmployee {
		return auth.TokenResponse{}, validator.ValidationErrors{{
			Field:   "role",
			Message: "role must be admin or employee for signup",
		}}
	}

	email := validator.NormalizeEmail(req.Email)

	existing, err := a.UserRepository.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Email was never provisioned; nothing to claim.
			return auth.TokenResponse{}, auth.ErrNotAuthorized
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Claim is a one-time transition per identity.
	if !existing.IsPlaceholder() {
		return auth.TokenResponse{}, auth.ErrAlreadyRegistered
	}

	if existing.Role != req.Role {
		return auth.TokenResponse{}, &auth.RoleMismatchError{
			Email:     email,
			Requested: req.Role,
			Actual:    existing.Role,
		}
	}

	hashed, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	activated, err := a.UserRepository.SetCredentials(ctx, existing.ID, req.Name, hashed)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to activate account: %w", err)
	}

	return a.issueToken(activated)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	email := validator.NormalizeEmail(req.Email)

	userData, err := a.UserRepository.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.TokenResponse{}, auth.ErrAccountNotFound
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	// A placeholder account has no credentials yet; the caller must claim
	// it through signup first.
	if userData.IsPlaceholder() {
		return auth.TokenResponse{}, auth.ErrNotActivated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrWrongCredentials
	}

	return a.issueToken(userData)
}

// ProvisionAdmin implements auth.AuthService. Provisioning an email that
// already holds an admin placeholder is a no-op; an active account is a
// conflict.
func (a *AuthServiceImpl) ProvisionAdmin(ctx context.Context, req auth.AddAdminEmailRequest) (user.User, error) {
	email := validator.NormalizeEmail(req.Email)

	existing, err := a.UserRepository.GetByEmail(ctx, email)
	if err == nil {
		if !existing.IsPlaceholder() {
			return user.User{}, auth.ErrDuplicateEmail
		}
		if existing.Role == user.RoleAdmin {
			// Idempotent re-provision
			return existing, nil
		}
		return user.User{}, auth.ErrDuplicateEmail
	}
	if err != pgx.ErrNoRows {
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		Name:   fmt.Sprintf("Admin (%s)", email),
		Email:  email,
		Role:   user.RoleAdmin,
		Status: "active",
	})
	if err != nil {
		return user.User{}, fmt.Errorf("failed to provision admin: %w", err)
	}
	return created, nil
}

// IsAdminEmailAuthorized implements auth.AuthService.
func (a *AuthServiceImpl) IsAdminEmailAuthorized(ctx context.Context, email string) (bool, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, validator.NormalizeEmail(email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to get user by email: %w", err)
	}
	return userData.Role == user.RoleAdmin, nil
}

// ListAdmins implements auth.AuthService.
func (a *AuthServiceImpl) ListAdmins(ctx context.Context) ([]user.User, error) {
	return a.UserRepository.ListByRole(ctx, user.RoleAdmin)
}

// RemoveAdmin implements auth.AuthService.
func (a *AuthServiceImpl) RemoveAdmin(ctx context.Context, id string) error {
	target, err := a.UserRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	// This endpoint only removes admins; non-admin accounts are managed
	// through the employee roster.
	if target.Role != user.RoleAdmin {
		return user.ErrUserNotFound
	}

	if a.cfg.IsProtectedAdmin(target.Email) {
		return user.ErrProtectedAdmin
	}

	if err := a.UserRepository.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
