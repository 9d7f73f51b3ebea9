package submission

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/teampulse/teampulse-backend-go/internal/config"
	"github.com/teampulse/teampulse-backend-go/internal/domain/auth"
	"github.com/teampulse/teampulse-backend-go/internal/domain/employee"
	"github.com/teampulse/teampulse-backend-go/internal/domain/task"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/validator"
	"github.com/teampulse/teampulse-backend-go/internal/service/file"
	taskservice "github.com/teampulse/teampulse-backend-go/internal/service/task"
)

type SubmissionServiceImpl struct {
	taskRepo     task.TaskRepository
	employeeRepo employee.EmployeeRepository
	fileService  file.FileService
	cfg          *config.Config
}

func NewSubmissionService(
	taskRepository task.TaskRepository,
	employeeRepository employee.EmployeeRepository,
	fileService file.FileService,
	cfg *config.Config,
) task.SubmissionService {
	return &SubmissionServiceImpl{
		taskRepo:     taskRepository,
		employeeRepo: employeeRepository,
		fileService:  fileService,
		cfg:          cfg,
	}
}

// Submit implements task.SubmissionService.
func (s *SubmissionServiceImpl) Submit(ctx context.Context, requester auth.Requester, taskID string, req task.SubmitRequest, files []task.SubmissionUpload) (task.Task, task.UploadReport, error) {
	t, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.UploadReport{}, task.ErrTaskNotFound
		}
		return task.Task{}, task.UploadReport{}, fmt.Errorf("failed to get task: %w", err)
	}

	var emp *employee.Employee
	e, err := s.employeeRepo.GetByEmail(ctx, validator.NormalizeEmail(requester.Email))
	if err != nil && err != pgx.ErrNoRows {
		return task.Task{}, task.UploadReport{}, fmt.Errorf("failed to resolve employee by email: %w", err)
	}
	if err == nil {
		emp = &e
	}

	if err := taskservice.CanActOnTask(requester, t, emp); err != nil {
		return task.Task{}, task.UploadReport{}, err
	}

	if !s.cfg.Task.AllowResubmit && t.IsDone() && t.Submission != nil {
		return task.Task{}, task.UploadReport{}, task.ErrAlreadySubmitted
	}

	report := task.UploadReport{
		Files: []task.SubmissionFile{},
	}
	if !req.SkipFileUpload {
		report.Requested = len(files)
		for _, f := range files {
			uploaded, err := s.fileService.UploadSubmissionFile(ctx, taskID, f.Content, f.Filename)
			if err != nil {
				// A failed upload must not block the submission itself.
				slog.Warn("submission file upload failed",
					"task_id", taskID,
					"filename", f.Filename,
					"error", err,
				)
				continue
			}
			report.Successful++
			report.Files = append(report.Files, uploaded)
		}
	}

	sub := task.Submission{
		Comment:     req.Comment,
		Remarks:     req.Remarks,
		Files:       report.Files,
		SubmittedAt: time.Now().UTC(),
		SubmittedBy: requester.UserID,
	}

	updated, err := s.taskRepo.SaveSubmission(ctx, taskID, sub)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.UploadReport{}, task.ErrTaskNotFound
		}
		return task.Task{}, task.UploadReport{}, fmt.Errorf("failed to save submission: %w", err)
	}

	slog.Info("task submitted",
		"task_id", taskID,
		"submitted_by", requester.UserID,
		"files_requested", report.Requested,
		"files_uploaded", report.Successful,
	)
	return updated, report, nil
}
