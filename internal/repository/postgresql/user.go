package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, name, email, password_hash, role, avatar_url, department, location, bio, phone, skills, status, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.AvatarURL,
		&u.Department,
		&u.Location,
		&u.Bio,
		&u.Phone,
		&u.Skills,
		&u.Status,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(q.QueryRow(ctx, query, id))
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(q.QueryRow(ctx, query, email))
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	skills := newUser.Skills
	if skills == nil {
		skills = []string{}
	}

	query := `
		INSERT INTO users (name, email, password_hash, role, avatar_url, department, location, bio, phone, skills, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + userColumns

	return scanUser(q.QueryRow(ctx, query,
		newUser.Name,
		newUser.Email,
		newUser.PasswordHash,
		newUser.Role,
		newUser.AvatarURL,
		newUser.Department,
		newUser.Location,
		newUser.Bio,
		newUser.Phone,
		skills,
		newUser.Status,
	))
}

// SetCredentials implements user.UserRepository.
func (r *userRepositoryImpl) SetCredentials(ctx context.Context, id string, name string, passwordHash string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET name = $1, password_hash = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + userColumns

	return scanUser(q.QueryRow(ctx, query, name, passwordHash, id))
}

// UpdateProfile implements user.UserRepository.
func (r *userRepositoryImpl) UpdateProfile(ctx context.Context, id string, req user.UpdateProfileRequest) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET name       = COALESCE($1, name),
		    phone      = COALESCE($2, phone),
		    department = COALESCE($3, department),
		    location   = COALESCE($4, location),
		    bio        = COALESCE($5, bio),
		    updated_at = NOW()
		WHERE id = $6
		RETURNING ` + userColumns

	return scanUser(q.QueryRow(ctx, query,
		req.Name,
		req.Phone,
		req.Department,
		req.Location,
		req.Bio,
		id,
	))
}

// UpdateAvatar implements user.UserRepository.
func (r *userRepositoryImpl) UpdateAvatar(ctx context.Context, id string, avatarURL string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET avatar_url = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + userColumns

	return scanUser(q.QueryRow(ctx, query, avatarURL, id))
}

// ListByRole implements user.UserRepository.
func (r *userRepositoryImpl) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY created_at DESC`
	rows, err := q.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
