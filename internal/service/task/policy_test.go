package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teampulse/teampulse-backend-go/internal/domain/auth"
	"github.com/teampulse/teampulse-backend-go/internal/domain/employee"
	"github.com/teampulse/teampulse-backend-go/internal/domain/task"
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
)

func employeeRequester() auth.Requester {
	return auth.Requester{
		UserID: "user-1",
		Email:  "dina@teampulse.io",
		Role:   user.RoleEmployee,
		Name:   "Dina",
	}
}

func dinaEmployee() *employee.Employee {
	return &employee.Employee{
		ID:    "emp-1",
		Name:  "Dina",
		Email: "dina@teampulse.io",
		Role:  user.RoleEmployee,
	}
}

func TestCanActOnTask_TaggedUserReference(t *testing.T) {
	req := employeeRequester()
	emp := dinaEmployee()

	assigned := task.Task{AssigneeID: "user-1", AssigneeKind: task.KindUser}
	assert.NoError(t, CanActOnTask(req, assigned, emp))

	// A user-tagged reference never matches the employee id, even when it
	// would under legacy fallback.
	misTagged := task.Task{AssigneeID: "emp-1", AssigneeKind: task.KindUser}
	assert.Error(t, CanActOnTask(req, misTagged, emp))
}

func TestCanActOnTask_TaggedEmployeeReference(t *testing.T) {
	req := employeeRequester()
	emp := dinaEmployee()

	assigned := task.Task{AssigneeID: "emp-1", AssigneeKind: task.KindEmployee}
	assert.NoError(t, CanActOnTask(req, assigned, emp))

	misTagged := task.Task{AssigneeID: "user-1", AssigneeKind: task.KindEmployee}
	assert.Error(t, CanActOnTask(req, misTagged, emp))

	// Without an Employee record the employee-tagged reference cannot match.
	assert.Error(t, CanActOnTask(req, assigned, nil))
}

func TestCanActOnTask_LegacyUntaggedMatchesEitherIdentity(t *testing.T) {
	req := employeeRequester()
	emp := dinaEmployee()

	byUser := task.Task{AssigneeID: "user-1"}
	assert.NoError(t, CanActOnTask(req, byUser, emp))

	byEmployee := task.Task{AssigneeID: "emp-1"}
	assert.NoError(t, CanActOnTask(req, byEmployee, emp))

	neither := task.Task{AssigneeID: "someone-else"}
	assert.Error(t, CanActOnTask(req, neither, emp))
}

func TestCanActOnTask_NoRoleExemption(t *testing.T) {
	admin := auth.Requester{UserID: "admin-1", Email: "boss@teampulse.io", Role: user.RoleAdmin}

	// Admins read everything but cannot submit for someone else.
	other := task.Task{AssigneeID: "emp-1", AssigneeKind: task.KindEmployee}
	err := CanActOnTask(admin, other, nil)
	require.Error(t, err)

	var notAssigned *task.NotAssignedError
	require.ErrorAs(t, err, &notAssigned)
	assert.Equal(t, "emp-1", notAssigned.TaskAssignee)
	assert.Equal(t, "admin-1", notAssigned.UserID)
	assert.Empty(t, notAssigned.EmployeeID)
}

func TestCanActOnTask_ErrorCarriesComparedIDs(t *testing.T) {
	req := employeeRequester()
	emp := dinaEmployee()

	err := CanActOnTask(req, task.Task{AssigneeID: "emp-99", AssigneeKind: task.KindEmployee}, emp)
	var notAssigned *task.NotAssignedError
	require.ErrorAs(t, err, &notAssigned)

	details := notAssigned.Details()
	assert.Equal(t, "emp-99", details["task_assigned_to"])
	assert.Equal(t, "user-1", details["user_id"])
	assert.Equal(t, "emp-1", details["employee_id"])
}

func TestCanAccessTask_RoleExemptionForRead(t *testing.T) {
	other := task.Task{AssigneeID: "emp-1", AssigneeKind: task.KindEmployee}

	admin := auth.Requester{UserID: "admin-1", Role: user.RoleAdmin}
	assert.True(t, CanAccessTask(admin, other, nil))

	manager := auth.Requester{UserID: "mgr-1", Role: user.RoleManager}
	assert.True(t, CanAccessTask(manager, other, nil))

	stranger := auth.Requester{UserID: "user-9", Role: user.RoleEmployee}
	assert.False(t, CanAccessTask(stranger, other, nil))

	assert.True(t, CanAccessTask(employeeRequester(), other, dinaEmployee()))
}

func TestVisibilityFilter(t *testing.T) {
	admin := auth.Requester{UserID: "admin-1", Role: user.RoleAdmin}
	assert.Nil(t, visibilityFilter(admin, nil))

	req := employeeRequester()
	assert.Equal(t, []string{"user-1", "emp-1"}, visibilityFilter(req, dinaEmployee()))
	assert.Equal(t, []string{"user-1"}, visibilityFilter(req, nil))
}
