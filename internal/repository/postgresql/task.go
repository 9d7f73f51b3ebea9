package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/teampulse/teampulse-backend-go/internal/domain/task"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/database"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

const taskColumns = `id, title, description, assignee_id, assignee_kind, due_date, status, priority, tags, progress, created_by, estimated_hours, actual_hours, attachments, submission, created_at, updated_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters in user-supplied search text so
// a search for a literal "50%" does not match everything starting with "50".
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	var submissionJSON []byte
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.AssigneeID,
		&t.AssigneeKind,
		&t.DueDate,
		&t.Status,
		&t.Priority,
		&t.Tags,
		&t.Progress,
		&t.CreatedBy,
		&t.EstimatedHours,
		&t.ActualHours,
		&t.Attachments,
		&submissionJSON,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return task.Task{}, err
	}
	if len(submissionJSON) > 0 {
		var sub task.Submission
		if err := json.Unmarshal(submissionJSON, &sub); err != nil {
			return task.Task{}, fmt.Errorf("decode submission: %w", err)
		}
		t.Submission = &sub
	}
	return t, nil
}

// GetByID implements task.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	return scanTask(q.QueryRow(ctx, query, id))
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, newTask task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	tags := newTask.Tags
	if tags == nil {
		tags = []string{}
	}
	attachments := newTask.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	query := `
		INSERT INTO tasks (title, description, assignee_id, assignee_kind, due_date, status, priority, tags, progress, created_by, estimated_hours, actual_hours, attachments)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + taskColumns

	return scanTask(q.QueryRow(ctx, query,
		newTask.Title,
		newTask.Description,
		newTask.AssigneeID,
		newTask.AssigneeKind,
		newTask.DueDate,
		newTask.Status,
		newTask.Priority,
		tags,
		newTask.Progress,
		newTask.CreatedBy,
		newTask.EstimatedHours,
		newTask.ActualHours,
		attachments,
	))
}

// Update implements task.TaskRepository.
func (r *taskRepositoryImpl) Update(ctx context.Context, id string, req task.UpdateTaskRequest) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET title           = COALESCE($1, title),
		    description     = COALESCE($2, description),
		    assignee_id     = COALESCE($3::uuid, assignee_id),
		    assignee_kind   = COALESCE($4, assignee_kind),
		    due_date        = COALESCE($5, due_date),
		    status          = COALESCE($6, status),
		    priority        = COALESCE($7, priority),
		    tags            = COALESCE($8, tags),
		    progress        = COALESCE($9, progress),
		    estimated_hours = COALESCE($10, estimated_hours),
		    actual_hours    = COALESCE($11, actual_hours),
		    updated_at      = NOW()
		WHERE id = $12
		RETURNING ` + taskColumns

	return scanTask(q.QueryRow(ctx, query,
		req.Title,
		req.Description,
		req.AssigneeID,
		req.AssigneeKind,
		req.ParsedDueDate,
		req.Status,
		req.Priority,
		req.Tags,
		req.Progress,
		req.EstimatedHours,
		req.ActualHours,
		id,
	))
}

// List implements task.TaskRepository.
func (r *taskRepositoryImpl) List(ctx context.Context, filter task.ListFilter) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE 1=1`
	args := []interface{}{}
	argN := 1

	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argN)
		args = append(args, filter.Status)
		argN++
	}
	if filter.Priority != "" {
		query += fmt.Sprintf(" AND priority = $%d", argN)
		args = append(args, filter.Priority)
		argN++
	}
	if filter.AssigneeID != "" {
		query += fmt.Sprintf(" AND assignee_id::text = $%d", argN)
		args = append(args, filter.AssigneeID)
		argN++
	}
	if len(filter.AssigneeAnyOf) > 0 {
		query += fmt.Sprintf(" AND assignee_id::text = ANY($%d)", argN)
		args = append(args, filter.AssigneeAnyOf)
		argN++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", argN, argN)
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		argN++
	}

	query += " ORDER BY due_date ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// SaveSubmission implements task.TaskRepository.
func (r *taskRepositoryImpl) SaveSubmission(ctx context.Context, id string, sub task.Submission) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	submissionJSON, err := json.Marshal(sub)
	if err != nil {
		return task.Task{}, fmt.Errorf("encode submission: %w", err)
	}

	query := `
		UPDATE tasks
		SET status = 'done', progress = 100, submission = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + taskColumns

	return scanTask(q.QueryRow(ctx, query, submissionJSON, id))
}

// Delete implements task.TaskRepository.
func (r *taskRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
