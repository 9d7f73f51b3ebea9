package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/teampulse/teampulse-backend-go/internal/domain/employee"
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	userRepo user.UserRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository, userRepository user.UserRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
		userRepo:           userRepository,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return s.EmployeeRepository.List(ctx)
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// Create implements employee.EmployeeService. The Employee row and the
// placeholder User account are two independent writes without a shared
// transaction; ensurePlaceholderUser is idempotent so a failed second half
// is repaired by any later employee write for the same email.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	email := validator.NormalizeEmail(req.Email)

	exists, err := s.EmployeeRepository.ExistsByEmail(ctx, email)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to check employee email: %w", err)
	}
	if exists {
		return employee.Employee{}, employee.ErrEmailExists
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		Name:       req.Name,
		Email:      email,
		Role:       req.Role,
		Department: req.Department,
		AvatarURL:  req.AvatarURL,
		Location:   req.Location,
		Status:     req.Status,
		Skills:     req.Skills,
		Bio:        req.Bio,
		Phone:      req.Phone,
		Salary:     req.Salary,
		StartDate:  req.StartDate,
	})
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	if err := s.ensurePlaceholderUser(ctx, created); err != nil {
		// The employee exists either way; the missing account half will be
		// re-created on the next reconciling write.
		slog.Error("failed to provision placeholder user for employee", "email", created.Email, "error", err)
	}

	return created, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	updated, err := s.EmployeeRepository.Update(ctx, id, req)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	// Reconcile the account half in case an earlier dual-write was cut short.
	if err := s.ensurePlaceholderUser(ctx, updated); err != nil {
		slog.Error("failed to reconcile placeholder user for employee", "email", updated.Email, "error", err)
	}

	return updated, nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// ensurePlaceholderUser creates the placeholder User account sharing the
// employee's email, so the employee can later claim it through signup.
// A user already existing for the email, claimed or not, is left untouched.
func (s *EmployeeServiceImpl) ensurePlaceholderUser(ctx context.Context, emp employee.Employee) error {
	existing, err := s.userRepo.GetByEmail(ctx, emp.Email)
	if err == nil {
		slog.Info("user already exists for employee email", "email", emp.Email, "user_id", existing.ID, "role", existing.Role)
		return nil
	}
	if err != pgx.ErrNoRows {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Name:       emp.Name,
		Email:      emp.Email,
		Role:       emp.Role,
		Department: &emp.Department,
		Location:   emp.Location,
		Bio:        emp.Bio,
		Phone:      emp.Phone,
		Skills:     emp.Skills,
		Status:     string(emp.Status),
		AvatarURL:  emp.AvatarURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create placeholder user: %w", err)
	}
	slog.Info("created placeholder user for employee", "email", emp.Email, "user_id", created.ID, "role", created.Role)
	return nil
}
