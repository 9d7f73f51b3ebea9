package task

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrAlreadySubmitted = errors.New("task has already been submitted")
)

// NotAssignedError is returned when a requester who is not the task's
// resolved assignee attempts to act on it. It carries the three compared
// identifiers so a failed match against an ambiguous assignee reference can
// be traced.
type NotAssignedError struct {
	TaskAssignee string
	UserID       string
	// EmployeeID is empty when no Employee record matched the requester's
	// email.
	EmployeeID string
}

func (e *NotAssignedError) Error() string {
	return fmt.Sprintf("you are not assigned to this task (assignee=%s, user=%s, employee=%s)",
		e.TaskAssignee, e.UserID, e.EmployeeID)
}

// Details returns the compared identifiers for the error payload.
func (e *NotAssignedError) Details() map[string]string {
	return map[string]string{
		"task_assigned_to": e.TaskAssignee,
		"user_id":          e.UserID,
		"employee_id":      e.EmployeeID,
	}
}
