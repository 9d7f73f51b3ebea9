package task

import (
	"context"
	"io"

	"github.com/teampulse/teampulse-backend-go/internal/domain/auth"
)

// ListQuery carries the caller-supplied listing filters; the resolver adds
// its own visibility constraint for employee requesters.
type ListQuery struct {
	Status     string
	Priority   string
	AssigneeID string
	Search     string
}

type TaskService interface {
	List(ctx context.Context, requester auth.Requester, query ListQuery) ([]Task, error)
	Get(ctx context.Context, requester auth.Requester, id string) (Task, error)
	Create(ctx context.Context, requester auth.Requester, req CreateTaskRequest) (Task, error)
	Update(ctx context.Context, id string, req UpdateTaskRequest) (Task, error)
	Delete(ctx context.Context, id string) error
}

// SubmissionUpload is one file attached to a completion submission.
type SubmissionUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

type SubmissionService interface {
	// Submit records a task completion for the requester. File uploads are
	// fire-and-forget per file; the report accounts for partial success.
	Submit(ctx context.Context, requester auth.Requester, taskID string, req SubmitRequest, files []SubmissionUpload) (Task, UploadReport, error)
}
