package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/teampulse/teampulse-backend-go/internal/domain/employee"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, name, email, role, department, avatar_url, location, status, skills, bio, phone, salary, start_date, joined_at, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Email,
		&e.Role,
		&e.Department,
		&e.AvatarURL,
		&e.Location,
		&e.Status,
		&e.Skills,
		&e.Bio,
		&e.Phone,
		&e.Salary,
		&e.StartDate,
		&e.JoinedAt,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return scanEmployee(q.QueryRow(ctx, query, id))
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`
	return scanEmployee(q.QueryRow(ctx, query, email))
}

// ExistsByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	skills := newEmployee.Skills
	if skills == nil {
		skills = []string{}
	}

	query := `
		INSERT INTO employees (name, email, role, department, avatar_url, location, status, skills, bio, phone, salary, start_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + employeeColumns

	return scanEmployee(q.QueryRow(ctx, query,
		newEmployee.Name,
		newEmployee.Email,
		newEmployee.Role,
		newEmployee.Department,
		newEmployee.AvatarURL,
		newEmployee.Location,
		newEmployee.Status,
		skills,
		newEmployee.Bio,
		newEmployee.Phone,
		newEmployee.Salary,
		newEmployee.StartDate,
	))
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name       = COALESCE($1, name),
		    role       = COALESCE($2, role),
		    department = COALESCE($3, department),
		    avatar_url = COALESCE($4, avatar_url),
		    location   = COALESCE($5, location),
		    status     = COALESCE($6, status),
		    skills     = COALESCE($7, skills),
		    bio        = COALESCE($8, bio),
		    phone      = COALESCE($9, phone),
		    salary     = COALESCE($10, salary),
		    start_date = COALESCE($11, start_date),
		    updated_at = NOW()
		WHERE id = $12
		RETURNING ` + employeeColumns

	return scanEmployee(q.QueryRow(ctx, query,
		req.Name,
		req.Role,
		req.Department,
		req.AvatarURL,
		req.Location,
		req.Status,
		req.Skills,
		req.Bio,
		req.Phone,
		req.Salary,
		req.StartDate,
		id,
	))
}

// UpdateByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdateByEmail(ctx context.Context, email string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name       = COALESCE($1, name),
		    department = COALESCE($2, department),
		    avatar_url = COALESCE($3, avatar_url),
		    location   = COALESCE($4, location),
		    bio        = COALESCE($5, bio),
		    phone      = COALESCE($6, phone),
		    updated_at = NOW()
		WHERE email = $7`

	_, err := q.Exec(ctx, query,
		req.Name,
		req.Department,
		req.AvatarURL,
		req.Location,
		req.Bio,
		req.Phone,
		email,
	)
	return err
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at DESC`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
