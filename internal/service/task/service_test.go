package task

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teampulse/teampulse-backend-go/internal/domain/auth"
	"github.com/teampulse/teampulse-backend-go/internal/domain/employee"
	"github.com/teampulse/teampulse-backend-go/internal/domain/task"
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
)

type fakeTaskRepository struct {
	byID   map[string]task.Task
	nextID int
}

func newFakeTaskRepository() *fakeTaskRepository {
	return &fakeTaskRepository{byID: make(map[string]task.Task)}
}

func (f *fakeTaskRepository) GetByID(ctx context.Context, id string) (task.Task, error) {
	t, ok := f.byID[id]
	if !ok {
		return task.Task{}, pgx.ErrNoRows
	}
	return t, nil
}

func (f *fakeTaskRepository) Create(ctx context.Context, newTask task.Task) (task.Task, error) {
	f.nextID++
	newTask.ID = fmt.Sprintf("task-%d", f.nextID)
	f.byID[newTask.ID] = newTask
	return newTask, nil
}

func (f *fakeTaskRepository) Update(ctx context.Context, id string, req task.UpdateTaskRequest) (task.Task, error) {
	t, ok := f.byID[id]
	if !ok {
		return task.Task{}, pgx.ErrNoRows
	}
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.Progress != nil {
		t.Progress = *req.Progress
	}
	f.byID[id] = t
	return t, nil
}

func (f *fakeTaskRepository) List(ctx context.Context, filter task.ListFilter) ([]task.Task, error) {
	var out []task.Task
	for _, t := range f.byID {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		if filter.AssigneeID != "" && t.AssigneeID != filter.AssigneeID {
			continue
		}
		if filter.AssigneeAnyOf != nil {
			matched := false
			for _, id := range filter.AssigneeAnyOf {
				if t.AssigneeID == id {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTaskRepository) SaveSubmission(ctx context.Context, id string, sub task.Submission) (task.Task, error) {
	t, ok := f.byID[id]
	if !ok {
		return task.Task{}, pgx.ErrNoRows
	}
	t.Status = task.StatusDone
	t.Progress = 100
	t.Submission = &sub
	f.byID[id] = t
	return t, nil
}

func (f *fakeTaskRepository) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.byID, id)
	return nil
}

type fakeEmployeeRepository struct {
	byID   map[string]employee.Employee
	nextID int
}

func newFakeEmployeeRepository() *fakeEmployeeRepository {
	return &fakeEmployeeRepository{byID: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return e, nil
}

func (f *fakeEmployeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, e := range f.byID {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, pgx.ErrNoRows
}

func (f *fakeEmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	f.nextID++
	if newEmployee.ID == "" {
		newEmployee.ID = fmt.Sprintf("emp-%d", f.nextID)
	}
	f.byID[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	e, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Status != nil {
		e.Status = *req.Status
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	f.byID[id] = e
	return e, nil
}

func (f *fakeEmployeeRepository) UpdateByEmail(ctx context.Context, email string, req employee.UpdateEmployeeRequest) error {
	for id, e := range f.byID {
		if e.Email == email {
			_, err := f.Update(ctx, id, req)
			return err
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeEmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.byID {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.byID, id)
	return nil
}

func TestTaskService_List_EmployeeSeesOnlyOwnTasks(t *testing.T) {
	ctx := context.Background()
	taskRepo := newFakeTaskRepository()
	empRepo := newFakeEmployeeRepository()
	empRepo.Create(ctx, employee.Employee{ID: "emp-1", Name: "Dina", Email: "dina@teampulse.io", Role: user.RoleEmployee})

	// One task per reference shape, plus one for somebody else.
	taskRepo.Create(ctx, task.Task{Title: "mine by user id", AssigneeID: "user-1", AssigneeKind: task.KindUser})
	taskRepo.Create(ctx, task.Task{Title: "mine by employee id", AssigneeID: "emp-1", AssigneeKind: task.KindEmployee})
	taskRepo.Create(ctx, task.Task{Title: "mine legacy", AssigneeID: "emp-1"})
	taskRepo.Create(ctx, task.Task{Title: "not mine", AssigneeID: "emp-2", AssigneeKind: task.KindEmployee})

	svc := NewTaskService(taskRepo, empRepo)
	requester := auth.Requester{UserID: "user-1", Email: "dina@teampulse.io", Role: user.RoleEmployee}

	tasks, err := svc.List(ctx, requester, task.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
	for _, got := range tasks {
		assert.NotEqual(t, "not mine", got.Title)
	}
}

func TestTaskService_List_ManagerSeesEverything(t *testing.T) {
	ctx := context.Background()
	taskRepo := newFakeTaskRepository()
	empRepo := newFakeEmployeeRepository()
	taskRepo.Create(ctx, task.Task{Title: "a", AssigneeID: "emp-1", AssigneeKind: task.KindEmployee})
	taskRepo.Create(ctx, task.Task{Title: "b", AssigneeID: "emp-2", AssigneeKind: task.KindEmployee})

	svc := NewTaskService(taskRepo, empRepo)
	manager := auth.Requester{UserID: "mgr-1", Email: "mgr@teampulse.io", Role: user.RoleManager}

	tasks, err := svc.List(ctx, manager, task.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestTaskService_List_PriorityAllDisablesFilter(t *testing.T) {
	ctx := context.Background()
	taskRepo := newFakeTaskRepository()
	taskRepo.Create(ctx, task.Task{Title: "a", AssigneeID: "x", Priority: task.PriorityLow})
	taskRepo.Create(ctx, task.Task{Title: "b", AssigneeID: "x", Priority: task.PriorityHigh})

	svc := NewTaskService(taskRepo, newFakeEmployeeRepository())
	admin := auth.Requester{UserID: "admin-1", Email: "boss@teampulse.io", Role: user.RoleAdmin}

	tasks, err := svc.List(ctx, admin, task.ListQuery{Priority: "all"})
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	tasks, err = svc.List(ctx, admin, task.ListQuery{Priority: "high"})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "b", tasks[0].Title)
}

func TestTaskService_Get_EmployeeCannotSeeForeignTask(t *testing.T) {
	ctx := context.Background()
	taskRepo := newFakeTaskRepository()
	empRepo := newFakeEmployeeRepository()
	foreign, _ := taskRepo.Create(ctx, task.Task{Title: "not mine", AssigneeID: "emp-2", AssigneeKind: task.KindEmployee})

	svc := NewTaskService(taskRepo, empRepo)
	requester := auth.Requester{UserID: "user-1", Email: "dina@teampulse.io", Role: user.RoleEmployee}

	_, err := svc.Get(ctx, requester, foreign.ID)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)

	admin := auth.Requester{UserID: "admin-1", Email: "boss@teampulse.io", Role: user.RoleAdmin}
	got, err := svc.Get(ctx, admin, foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, foreign.ID, got.ID)
}

func TestTaskService_Get_NotFound(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepository(), newFakeEmployeeRepository())
	admin := auth.Requester{UserID: "admin-1", Role: user.RoleAdmin}

	_, err := svc.Get(context.Background(), admin, "missing")
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestTaskService_Create_RecordsCreator(t *testing.T) {
	ctx := context.Background()
	taskRepo := newFakeTaskRepository()
	svc := NewTaskService(taskRepo, newFakeEmployeeRepository())
	manager := auth.Requester{UserID: "mgr-1", Email: "mgr@teampulse.io", Role: user.RoleManager}

	req := task.CreateTaskRequest{
		Title:       "Quarterly report",
		Description: "Compile the Q3 numbers",
		AssigneeID:  "6f1e8d42-9c3a-4b5e-8f2a-1d3c5e7a9b01",
		DueDate:     "2026-09-30",
	}
	require.NoError(t, req.Validate())

	created, err := svc.Create(ctx, manager, req)
	require.NoError(t, err)
	require.NotNil(t, created.CreatedBy)
	assert.Equal(t, "mgr-1", *created.CreatedBy)
	assert.Equal(t, task.KindEmployee, created.AssigneeKind)
	assert.Equal(t, task.StatusTodo, created.Status)
	assert.Equal(t, task.PriorityMedium, created.Priority)
}
