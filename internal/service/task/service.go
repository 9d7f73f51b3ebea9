package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/teampulse/teampulse-backend-go/internal/domain/auth"
	"github.com/teampulse/teampulse-backend-go/internal/domain/employee"
	"github.com/teampulse/teampulse-backend-go/internal/domain/task"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/validator"
)

type TaskServiceImpl struct {
	task.TaskRepository
	employeeRepo employee.EmployeeRepository
}

func NewTaskService(taskRepository task.TaskRepository, employeeRepository employee.EmployeeRepository) task.TaskService {
	return &TaskServiceImpl{
		TaskRepository: taskRepository,
		employeeRepo:   employeeRepository,
	}
}

// resolveEmployee finds the Employee record matching the requester's email,
// or nil when none exists. A missing record is not an error; the resolver
// falls back to direct user-id matching.
func resolveEmployee(ctx context.Context, repo employee.EmployeeRepository, requester auth.Requester) (*employee.Employee, error) {
	emp, err := repo.GetByEmail(ctx, validator.NormalizeEmail(requester.Email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve employee by email: %w", err)
	}
	return &emp, nil
}

// List implements task.TaskService.
func (s *TaskServiceImpl) List(ctx context.Context, requester auth.Requester, query task.ListQuery) ([]task.Task, error) {
	filter := task.ListFilter{
		Status:     task.Status(query.Status),
		Priority:   task.Priority(query.Priority),
		AssigneeID: query.AssigneeID,
		Search:     query.Search,
	}
	// "all" disables the priority filter; the dashboard sends it as a
	// default.
	if query.Priority == "all" {
		filter.Priority = ""
	}

	emp, err := resolveEmployee(ctx, s.employeeRepo, requester)
	if err != nil {
		return nil, err
	}
	if ids := visibilityFilter(requester, emp); ids != nil {
		slog.Info("filtering tasks for employee", "email", requester.Email, "assignee_ids", ids)
		filter.AssigneeAnyOf = ids
	}

	tasks, err := s.TaskRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Get implements task.TaskService.
func (s *TaskServiceImpl) Get(ctx context.Context, requester auth.Requester, id string) (task.Task, error) {
	t, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	emp, err := resolveEmployee(ctx, s.employeeRepo, requester)
	if err != nil {
		return task.Task{}, err
	}
	// An invisible task reads as absent, not forbidden.
	if !CanAccessTask(requester, t, emp) {
		return task.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// Create implements task.TaskService.
func (s *TaskServiceImpl) Create(ctx context.Context, requester auth.Requester, req task.CreateTaskRequest) (task.Task, error) {
	progress := 0
	if req.Progress != nil {
		progress = *req.Progress
	}

	newTask := task.Task{
		Title:          req.Title,
		Description:    req.Description,
		AssigneeID:     req.AssigneeID,
		AssigneeKind:   req.AssigneeKind,
		DueDate:        req.ParsedDueDate,
		Status:         req.Status,
		Priority:       req.Priority,
		Tags:           req.Tags,
		Progress:       progress,
		EstimatedHours: req.EstimatedHours,
	}
	if requester.UserID != "" {
		newTask.CreatedBy = &requester.UserID
	}

	created, err := s.TaskRepository.Create(ctx, newTask)
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	slog.Info("task created", "task_id", created.ID, "title", created.Title, "assigned_to", created.AssigneeID, "kind", created.AssigneeKind)
	return created, nil
}

// Update implements task.TaskService.
func (s *TaskServiceImpl) Update(ctx context.Context, id string, req task.UpdateTaskRequest) (task.Task, error) {
	updated, err := s.TaskRepository.Update(ctx, id, req)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	return updated, nil
}

// Delete implements task.TaskService.
func (s *TaskServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.TaskRepository.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return task.ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
