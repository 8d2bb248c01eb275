package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/worktrack-hq/worktrack-backend-go/internal/domain/task"
	"github.com/worktrack-hq/worktrack-backend-go/internal/handler/http/response"
)

type TaskHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	AppendTimeLog(w http.ResponseWriter, r *http.Request)
	Sanction(w http.ResponseWriter, r *http.Request)
}

type TaskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &TaskHandlerImpl{taskService: taskService}
}

// Create implements TaskHandler.
func (t *TaskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
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

	taskResponse, err := t.taskService.Create(r.Context(), actor, createReq)
	if err != nil {
		slog.Error("Create task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Task created", "task_id", taskResponse.ID, "assigned_to", taskResponse.AssignedTo)
	response.Created(w, "Task created successfully", taskResponse)
}

// List implements TaskHandler.
func (t *TaskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	taskResponses, err := t.taskService.List(r.Context(), actor)
	if err != nil {
		slog.Error("List tasks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, taskResponses)
}

// SetStatus implements TaskHandler.
func (t *TaskHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var statusReq task.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("Set status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	taskID := chi.URLParam(r, "id")
	taskResponse, err := t.taskService.SetStatus(r.Context(), actor, taskID, statusReq)
	if err != nil {
		slog.Error("Set status service error", "error", err, "task_id", taskID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Task status updated", "task_id", taskID, "status", taskResponse.Status)
	response.SuccessWithMessage(w, "Task status updated", taskResponse)
}

// AppendTimeLog implements TaskHandler.
func (t *TaskHandlerImpl) AppendTimeLog(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var timeLogReq task.TimeLogRequest
	if err := json.NewDecoder(r.Body).Decode(&timeLogReq); err != nil {
		slog.Error("Append time log decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	taskID := chi.URLParam(r, "id")
	taskResponse, err := t.taskService.AppendTimeLog(r.Context(), actor, taskID, timeLogReq)
	if err != nil {
		slog.Error("Append time log service error", "error", err, "task_id", taskID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Time log appended", "task_id", taskID)
	response.Created(w, "Time log appended", taskResponse)
}

// Sanction implements TaskHandler.
func (t *TaskHandlerImpl) Sanction(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var sanctionReq task.SanctionRequest
	if err := json.NewDecoder(r.Body).Decode(&sanctionReq); err != nil {
		slog.Error("Sanction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	taskID := chi.URLParam(r, "id")
	taskResponse, err := t.taskService.Sanction(r.Context(), actor, taskID, sanctionReq)
	if err != nil {
		slog.Error("Sanction service error", "error", err, "task_id", taskID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Task sanction recorded", "task_id", taskID, "admin_status", taskResponse.AdminStatus)
	response.SuccessWithMessage(w, "Task sanction recorded", taskResponse)
}
