package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/lifetrackhq/lifetrack/internal/model"
	"github.com/lifetrackhq/lifetrack/internal/repository"
	"github.com/lifetrackhq/lifetrack/internal/service"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type createTaskRequest struct {
	Title        string `json:"title" validate:"required"`
	Note         string `json:"note"`
	ParentTaskID string `json:"parentTaskId"`
	DueDate      string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	params := service.CreateTaskParams{
		Title:        req.Title,
		Note:         req.Note,
		ParentTaskID: req.ParentTaskID,
	}
	if req.DueDate != "" {
		date, err := parseDate(req.DueDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid dueDate")
			return
		}
		params.DueDate = &date
	}

	task, err := h.taskService.Create(params)
	if errors.Is(err, repository.ErrTaskNotFound) {
		respondError(w, http.StatusNotFound, "parent task not found")
		return
	}
	if err != nil {
		slog.Error("failed to create task", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create task")
		return
	}

	respondJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ActiveTopLevel()
	if err != nil {
		slog.Error("failed to list tasks", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list tasks")
		return
	}

	if tasks == nil {
		tasks = []*model.Task{}
	}
	respondJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) Subtasks(w http.ResponseWriter, r *http.Request) {
	taskID := r.PathValue("id")

	tasks, err := h.taskService.Subtasks(taskID)
	if err != nil {
		slog.Error("failed to list subtasks", "error", err, "task_id", taskID)
		respondError(w, http.StatusInternalServerError, "failed to list subtasks")
		return
	}

	if tasks == nil {
		tasks = []*model.Task{}
	}
	respondJSON(w, http.StatusOK, tasks)
}

type updateTaskRequest struct {
	Title   *string `json:"title"`
	Note    *string `json:"note"`
	DueDate *string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	taskID := r.PathValue("id")

	var req updateTaskRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	params := service.UpdateTaskParams{
		Title: req.Title,
		Note:  req.Note,
	}
	if req.DueDate != nil {
		date, err := parseDate(*req.DueDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid dueDate")
			return
		}
		params.DueDate = &date
	}

	task, err := h.taskService.Update(taskID, params)
	if errors.Is(err, repository.ErrTaskNotFound) {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}
	if err != nil {
		slog.Error("failed to update task", "error", err, "task_id", taskID)
		respondError(w, http.StatusInternalServerError, "failed to update task")
		return
	}

	respondJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	taskID := r.PathValue("id")

	task, err := h.taskService.Complete(taskID)
	if errors.Is(err, repository.ErrTaskNotFound) {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}
	if errors.Is(err, service.ErrSubtasksOpen) {
		respondError(w, http.StatusConflict, "task has unfinished subtasks")
		return
	}
	if err != nil {
		slog.Error("failed to complete task", "error", err, "task_id", taskID)
		respondError(w, http.StatusInternalServerError, "failed to complete task")
		return
	}

	respondJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	taskID := r.PathValue("id")

	err := h.taskService.SoftDelete(taskID)
	if errors.Is(err, repository.ErrTaskNotFound) {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete task", "error", err, "task_id", taskID)
		respondError(w, http.StatusInternalServerError, "failed to delete task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
