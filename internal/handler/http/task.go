package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teampulse/teampulse-backend-go/internal/domain/task"
	"github.com/teampulse/teampulse-backend-go/internal/handler/http/middleware"
	"github.com/teampulse/teampulse-backend-go/internal/handler/http/response"
)

type TaskHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TaskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &TaskHandlerImpl{
		taskService: taskService,
	}
}

// List implements TaskHandler. Visibility filtering for employee requesters
// happens in the service, never here.
func (h *TaskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	requester, err := middleware.RequesterFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := task.ListQuery{
		Status:     r.URL.Query().Get("status"),
		Priority:   r.URL.Query().Get("priority"),
		AssigneeID: r.URL.Query().Get("assigned_to"),
		Search:     r.URL.Query().Get("search"),
	}

	tasks, err := h.taskService.List(r.Context(), requester, query)
	if err != nil {
		slog.Error("List tasks service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, tasks)
}

// Get implements TaskHandler.
func (h *TaskHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	requester, err := middleware.RequesterFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id := chi.URLParam(r, "id")

	t, err := h.taskService.Get(r.Context(), requester, id)
	if err != nil {
		slog.Error("Get task service error", "task_id", id, "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, t)
}

// Create implements TaskHandler.
func (h *TaskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	requester, err := middleware.RequesterFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq task.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Create task validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.taskService.Create(r.Context(), requester, createReq)
	if err != nil {
		slog.Error("Create task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task created successfully", created)
}

// Update implements TaskHandler.
func (h *TaskHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq task.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update task validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.taskService.Update(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Update task service error", "task_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task updated successfully", updated)
}

// Delete implements TaskHandler.
func (h *TaskHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete task service error", "task_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Task deleted", "task_id", id)
	response.SuccessWithMessage(w, "Task deleted successfully", nil)
}
