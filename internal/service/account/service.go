package account

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/teampulse/teampulse-backend-go/internal/domain/employee"
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/validator"
	"github.com/teampulse/teampulse-backend-go/internal/service/file"
)

type AccountServiceImpl struct {
	user.UserRepository
	employeeRepo employee.EmployeeRepository
	fileService  file.FileService
}

func NewAccountService(
	userRepository user.UserRepository,
	employeeRepository employee.EmployeeRepository,
	fileService file.FileService,
) user.AccountService {
	return &AccountServiceImpl{
		UserRepository: userRepository,
		employeeRepo:   employeeRepository,
		fileService:    fileService,
	}
}

// GetProfile implements user.AccountService.
func (s *AccountServiceImpl) GetProfile(ctx context.Context, userID string) (user.Profile, error) {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.Profile{}, user.ErrUserNotFound
		}
		return user.Profile{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user.ToProfile(u), nil
}

// UpdateProfile implements user.AccountService.
func (s *AccountServiceImpl) UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest) (user.Profile, error) {
	updated, err := s.UserRepository.UpdateProfile(ctx, userID, req)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.Profile{}, user.ErrUserNotFound
		}
		return user.Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}

	s.mirrorToEmployee(ctx, updated, employee.UpdateEmployeeRequest{
		Name:       req.Name,
		Phone:      req.Phone,
		Department: req.Department,
		Location:   req.Location,
		Bio:        req.Bio,
	})

	return user.ToProfile(updated), nil
}

// UpdateAvatar implements user.AccountService.
func (s *AccountServiceImpl) UpdateAvatar(ctx context.Context, userID string, f io.Reader, filename string) (user.Profile, error) {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.Profile{}, user.ErrUserNotFound
		}
		return user.Profile{}, fmt.Errorf("failed to get user: %w", err)
	}

	url, err := s.fileService.UploadAvatar(ctx, userID, f, filename)
	if err != nil {
		return user.Profile{}, fmt.Errorf("failed to upload avatar: %w", err)
	}

	updated, err := s.UserRepository.UpdateAvatar(ctx, userID, url)
	if err != nil {
		return user.Profile{}, fmt.Errorf("failed to update avatar: %w", err)
	}

	s.mirrorToEmployee(ctx, u, employee.UpdateEmployeeRequest{AvatarURL: &url})

	return user.ToProfile(updated), nil
}

// mirrorToEmployee copies profile changes onto the Employee record sharing
// the user's email. Only employee and manager accounts have a directory
// half; a missing record or a failed write is logged, never surfaced, so
// the account update stays authoritative.
func (s *AccountServiceImpl) mirrorToEmployee(ctx context.Context, u user.User, req employee.UpdateEmployeeRequest) {
	if u.Role != user.RoleEmployee && u.Role != user.RoleManager {
		return
	}

	err := s.employeeRepo.UpdateByEmail(ctx, validator.NormalizeEmail(u.Email), req)
	if err != nil && err != pgx.ErrNoRows {
		slog.Warn("failed to mirror profile change to employee record",
			"user_id", u.ID,
			"email", u.Email,
			"error", err,
		)
	}
}
