package api

import (
	"errors"
	"log/slog"
	"net/http"

	"tasktrackr/internal/api/shared"
	"tasktrackr/internal/domain"
	"tasktrackr/internal/service"
	"tasktrackr/internal/store"
)

// ReorderTaskItem is one {id, order} pair of a reorder request.
// Order is decoded loosely and coerced, so numeric strings survive.
type ReorderTaskItem struct {
	ID    string `json:"id"    validate:"required"`
	Order any    `json:"order"`
}

// ReorderTasksRequest represents the request body for bulk reordering.
type ReorderTasksRequest struct {
	Tasks []ReorderTaskItem `json:"tasks" validate:"required,dive"`
}

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// CreateTask handles POST /tasks requests.
// The body is a free-form task document plus the required addedBy
// owner email; order and timestamp are stamped by the service.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := shared.DecodeJSON(r, &body); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	addedBy := popString(body, "addedBy")

	// The service stamps these; client-supplied values are discarded.
	delete(body, "id")
	delete(body, "order")
	delete(body, "timestamp")

	task, err := h.taskService.CreateTask(r.Context(), addedBy, body)
	if err != nil {
		if errors.Is(err, service.ErrOwnerRequired) {
			shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to create task", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// ListTasks handles GET /tasks?addedBy= requests.
// Tasks come back sorted by order ascending so the reorder endpoint is
// observable through this listing.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	addedBy := r.URL.Query().Get("addedBy")

	tasks, err := h.taskService.ListTasks(r.Context(), addedBy)
	if err != nil {
		if errors.Is(err, service.ErrOwnerRequired) {
			shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to fetch tasks", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetTask handles GET /tasks/{id} requests.
// Fetch-by-id is not owner-scoped: any caller with a valid id may
// fetch any task. Mutation stays owner-scoped.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to fetch task", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTask handles PUT /tasks/{id}?addedBy= requests.
// The patch is field-merged under the {id, addedBy} filter. A missing
// or foreign task is not an error; the caller inspects the counts.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	addedBy := r.URL.Query().Get("addedBy")

	var patch map[string]any
	if err := shared.DecodeJSON(r, &patch); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := h.taskService.UpdateTask(r.Context(), id, addedBy, patch)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to update task", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// DeleteTask handles DELETE /tasks/{id}?addedBy= requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	addedBy := r.URL.Query().Get("addedBy")

	if err := h.taskService.DeleteTask(r.Context(), id, addedBy); err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to delete task", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"deletedCount": 1})
}

// ReorderTasks handles PUT /tasks/reorder requests.
// One order-only update is dispatched per pair, concurrently; a single
// failure fails the whole batch, with no rollback of updates that
// already landed.
func (h *TaskHandler) ReorderTasks(w http.ResponseWriter, r *http.Request) {
	var req ReorderTasksRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: tasks list is required")
		return
	}

	pairs := make([]service.TaskOrder, 0, len(req.Tasks))
	for _, item := range req.Tasks {
		id, err := parseTaskID(item.ID)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
			return
		}
		pairs = append(pairs, service.TaskOrder{
			ID:    id,
			Order: domain.CoerceOrder(item.Order),
		})
	}

	if err := h.taskService.ReorderTasks(r.Context(), pairs); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to reorder tasks", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		map[string]string{"message": "Tasks reordered successfully"})
}
