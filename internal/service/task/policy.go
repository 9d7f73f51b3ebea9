package task

import (
	"github.com/teampulse/teampulse-backend-go/internal/domain/auth"
	"github.com/teampulse/teampulse-backend-go/internal/domain/employee"
	"github.com/teampulse/teampulse-backend-go/internal/domain/task"
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
)

// The assignee reference on a task may point at either identity collection.
// Tagged rows resolve unambiguously; legacy rows (KindUnknown) must be
// checked against both the requester's user id and their Employee record
// matched by email. Every access decision in the service goes through the
// two functions below; handlers never re-derive this.

// matchesAssignee reports whether the requester, with their resolved
// Employee record (nil if none), is the task's assignee.
func matchesAssignee(requester auth.Requester, t task.Task, emp *employee.Employee) bool {
	switch t.AssigneeKind {
	case task.KindUser:
		return t.AssigneeID == requester.UserID
	case task.KindEmployee:
		return emp != nil && t.AssigneeID == emp.ID
	default:
		// Legacy untagged reference: either comparison may hit.
		if t.AssigneeID == requester.UserID {
			return true
		}
		return emp != nil && t.AssigneeID == emp.ID
	}
}

// CanAccessTask decides read visibility. Admins and managers see
// everything; employees only see tasks resolving to themselves.
func CanAccessTask(requester auth.Requester, t task.Task, emp *employee.Employee) bool {
	if requester.Role != user.RoleEmployee {
		return true
	}
	return matchesAssignee(requester, t, emp)
}

// CanActOnTask decides whether the requester may submit completion for the
// task. Unlike read visibility there is no role exemption: only the
// resolved assignee may act. The returned error carries all three compared
// identifiers.
func CanActOnTask(requester auth.Requester, t task.Task, emp *employee.Employee) error {
	if matchesAssignee(requester, t, emp) {
		return nil
	}

	notAssigned := &task.NotAssignedError{
		TaskAssignee: t.AssigneeID,
		UserID:       requester.UserID,
	}
	if emp != nil {
		notAssigned.EmployeeID = emp.ID
	}
	return notAssigned
}

// visibilityFilter returns the assignee ids the requester may list tasks
// for, or nil when no visibility constraint applies.
func visibilityFilter(requester auth.Requester, emp *employee.Employee) []string {
	if requester.Role != user.RoleEmployee {
		return nil
	}
	if emp != nil {
		// Both ids: tagged rows carry one or the other, legacy rows may
		// carry either.
		return []string{requester.UserID, emp.ID}
	}
	// No Employee record for this email; only direct user assignment can
	// match.
	return []string{requester.UserID}
}
