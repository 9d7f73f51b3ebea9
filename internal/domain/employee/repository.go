package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)
	UpdateByEmail(ctx context.Context, email string, req UpdateEmployeeRequest) error
	List(ctx context.Context) ([]Employee, error)
	Delete(ctx context.Context, id string) error
}
