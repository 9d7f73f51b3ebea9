package task

import (
	"time"

	"github.com/teampulse/teampulse-backend-go/internal/pkg/validator"
)

type CreateTaskRequest struct {
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	AssigneeID     string       `json:"assigned_to"`
	AssigneeKind   AssigneeKind `json:"assignee_kind"`
	DueDate        string       `json:"due_date"`
	Status         Status       `json:"status"`
	Priority       Priority     `json:"priority"`
	Tags           []string     `json:"tags"`
	Progress       *int         `json:"progress"`
	EstimatedHours *float64     `json:"estimated_hours"`

	// parsed by Validate
	ParsedDueDate time.Time `json:"-"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	} else if len(r.Title) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must be at least 2 characters long",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	} else if len(r.Description) < 5 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must be at least 5 characters long",
		})
	}

	if validator.IsEmpty(r.AssigneeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_to",
			Message: "assigned_to is required",
		})
	} else if !validator.IsValidUUID(r.AssigneeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_to",
			Message: "assigned_to must be a valid uuid",
		})
	}
	// Tasks created through this API always carry a tagged reference;
	// untagged rows only exist as legacy data.
	if r.AssigneeKind == KindUnknown {
		r.AssigneeKind = KindEmployee
	}
	if !ValidAssigneeKind(r.AssigneeKind) {
		errs = append(errs, validator.ValidationError{
			Field:   "assignee_kind",
			Message: "assignee_kind must be employee or user",
		})
	}

	if validator.IsEmpty(r.DueDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "due_date",
			Message: "due_date is required",
		})
	} else if due, ok := validator.IsValidDate(r.DueDate); ok {
		r.ParsedDueDate = due
	} else if due, ok := validator.IsValidDateTime(r.DueDate); ok {
		r.ParsedDueDate = due
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "due_date",
			Message: "due_date must be a YYYY-MM-DD date or an ISO8601 timestamp",
		})
	}

	if r.Status == "" {
		r.Status = StatusTodo
	}
	if !ValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be todo, in-progress, blocked or done",
		})
	}

	if r.Priority == "" {
		r.Priority = PriorityMedium
	}
	if !ValidPriority(r.Priority) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be low, medium or high",
		})
	}

	if r.Progress != nil && (*r.Progress < 0 || *r.Progress > 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "progress",
			Message: "progress must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateTaskRequest is a partial update; nil fields are left unchanged.
type UpdateTaskRequest struct {
	Title          *string       `json:"title"`
	Description    *string       `json:"description"`
	AssigneeID     *string       `json:"assigned_to"`
	AssigneeKind   *AssigneeKind `json:"assignee_kind"`
	DueDate        *string       `json:"due_date"`
	Status         *Status       `json:"status"`
	Priority       *Priority     `json:"priority"`
	Tags           []string      `json:"tags"`
	Progress       *int          `json:"progress"`
	EstimatedHours *float64      `json:"estimated_hours"`
	ActualHours    *float64      `json:"actual_hours"`

	ParsedDueDate *time.Time `json:"-"`
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && len(*r.Title) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must be at least 2 characters long",
		})
	}
	if r.Description != nil && len(*r.Description) < 5 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must be at least 5 characters long",
		})
	}
	if r.Status != nil && !ValidStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be todo, in-progress, blocked or done",
		})
	}
	if r.Priority != nil && !ValidPriority(*r.Priority) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be low, medium or high",
		})
	}
	if r.AssigneeID != nil && !validator.IsValidUUID(*r.AssigneeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_to",
			Message: "assigned_to must be a valid uuid",
		})
	}
	if r.AssigneeKind != nil && !ValidAssigneeKind(*r.AssigneeKind) {
		errs = append(errs, validator.ValidationError{
			Field:   "assignee_kind",
			Message: "assignee_kind must be employee or user",
		})
	}
	if r.Progress != nil && (*r.Progress < 0 || *r.Progress > 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "progress",
			Message: "progress must be between 0 and 100",
		})
	}
	if r.DueDate != nil {
		if due, ok := validator.IsValidDate(*r.DueDate); ok {
			r.ParsedDueDate = &due
		} else if due, ok := validator.IsValidDateTime(*r.DueDate); ok {
			r.ParsedDueDate = &due
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "due_date",
				Message: "due_date must be a YYYY-MM-DD date or an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SubmitRequest carries the non-file fields of a completion submission.
type SubmitRequest struct {
	Comment        string
	Remarks        string
	SkipFileUpload bool
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Comment) {
		errs = append(errs, validator.ValidationError{
			Field:   "comment",
			Message: "comment is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UploadReport summarizes a batch of submission file uploads; uploads are
// independently fire-and-forget so a partial success is reported, not failed.
type UploadReport struct {
	Requested  int              `json:"requested"`
	Successful int              `json:"successful"`
	Files      []SubmissionFile `json:"files"`
}
