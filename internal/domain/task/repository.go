package task

import "context"

// ListFilter narrows a task listing. Zero values mean "no constraint".
// AssigneeAnyOf implements the resolver's dual-identifier match: a task
// passes when its assignee id equals any of the listed ids.
type ListFilter struct {
	Status        Status
	Priority      Priority
	AssigneeID    string
	Search        string
	AssigneeAnyOf []string
}

type TaskRepository interface {
	GetByID(ctx context.Context, id string) (Task, error)
	Create(ctx context.Context, newTask Task) (Task, error)
	Update(ctx context.Context, id string, req UpdateTaskRequest) (Task, error)
	List(ctx context.Context, filter ListFilter) ([]Task, error)
	// SaveSubmission marks the task done with full progress and attaches the
	// submission record in a single write.
	SaveSubmission(ctx context.Context, id string, sub Submission) (Task, error)
	Delete(ctx context.Context, id string) error
}
