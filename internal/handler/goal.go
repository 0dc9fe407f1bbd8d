package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/lifetrackhq/lifetrack/internal/model"
	"github.com/lifetrackhq/lifetrack/internal/repository"
	"github.com/lifetrackhq/lifetrack/internal/service"
)

type GoalHandler struct {
	goalService  *service.GoalService
	logService   *service.GoalLogService
	statsService *service.StatsService
}

func NewGoalHandler(goalService *service.GoalService, logService *service.GoalLogService, statsService *service.StatsService) *GoalHandler {
	return &GoalHandler{
		goalService:  goalService,
		logService:   logService,
		statsService: statsService,
	}
}

type createGoalRequest struct {
	Title           string `json:"title" validate:"required"`
	Type            string `json:"type" validate:"required,oneof=reading frequency numeric"`
	TargetValue     int    `json:"targetValue" validate:"min=0"`
	Unit            string `json:"unit"`
	TotalPages      int    `json:"totalPages" validate:"min=0"`
	FrequencyPeriod string `json:"frequencyPeriod" validate:"omitempty,oneof=daily weekly monthly"`
	TargetDate      string `json:"targetDate" validate:"omitempty,datetime=2006-01-02"`
	ParentID        string `json:"parentId"`
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	params := service.CreateGoalParams{
		Title:           req.Title,
		Type:            req.Type,
		TargetValue:     req.TargetValue,
		Unit:            req.Unit,
		TotalPages:      req.TotalPages,
		FrequencyPeriod: req.FrequencyPeriod,
		ParentID:        req.ParentID,
	}
	if req.TargetDate != "" {
		date, err := parseDate(req.TargetDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid targetDate")
			return
		}
		params.TargetDate = &date
	}

	goal, err := h.goalService.Create(params)
	if errors.Is(err, repository.ErrGoalNotFound) {
		respondError(w, http.StatusNotFound, "parent goal not found")
		return
	}
	if err != nil {
		slog.Error("failed to create goal", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create goal")
		return
	}

	respondJSON(w, http.StatusCreated, goal)
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goalService.ActiveTopLevel()
	if err != nil {
		slog.Error("failed to list goals", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list goals")
		return
	}

	if goals == nil {
		goals = []*model.Goal{}
	}
	respondJSON(w, http.StatusOK, goals)
}

type updateGoalRequest struct {
	Title           *string `json:"title"`
	TargetValue     *int    `json:"targetValue" validate:"omitempty,min=0"`
	Unit            *string `json:"unit"`
	CurrentValue    *int    `json:"currentValue"`
	CurrentPage     *int    `json:"currentPage"`
	TotalPages      *int    `json:"totalPages" validate:"omitempty,min=0"`
	FrequencyPeriod *string `json:"frequencyPeriod" validate:"omitempty,oneof=daily weekly monthly"`
	TargetDate      *string `json:"targetDate" validate:"omitempty,datetime=2006-01-02"`
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	goalID := r.PathValue("id")

	var req updateGoalRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	params := service.UpdateGoalParams{
		Title:           req.Title,
		TargetValue:     req.TargetValue,
		Unit:            req.Unit,
		CurrentValue:    req.CurrentValue,
		CurrentPage:     req.CurrentPage,
		TotalPages:      req.TotalPages,
		FrequencyPeriod: req.FrequencyPeriod,
	}
	if req.TargetDate != nil {
		date, err := parseDate(*req.TargetDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid targetDate")
			return
		}
		params.TargetDate = &date
	}

	goal, err := h.goalService.Update(goalID, params)
	if errors.Is(err, repository.ErrGoalNotFound) {
		respondError(w, http.StatusNotFound, "goal not found")
		return
	}
	if err != nil {
		slog.Error("failed to update goal", "error", err, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "failed to update goal")
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	goalID := r.PathValue("id")

	err := h.goalService.SoftDelete(goalID)
	if errors.Is(err, repository.ErrGoalNotFound) {
		respondError(w, http.StatusNotFound, "goal not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete goal", "error", err, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "failed to delete goal")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *GoalHandler) SubGoals(w http.ResponseWriter, r *http.Request) {
	goalID := r.PathValue("id")

	goals, err := h.goalService.SubGoals(goalID)
	if err != nil {
		slog.Error("failed to list sub-goals", "error", err, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "failed to list sub-goals")
		return
	}

	if goals == nil {
		goals = []*model.Goal{}
	}
	respondJSON(w, http.StatusOK, goals)
}

type logProgressRequest struct {
	Value   *int   `json:"value" validate:"required"`
	Note    string `json:"note"`
	LogDate string `json:"logDate" validate:"omitempty,datetime=2006-01-02"`
}

type logResponse struct {
	Log  *model.GoalLog `json:"log"`
	Goal *model.Goal    `json:"goal"`
}

func (h *GoalHandler) LogProgress(w http.ResponseWriter, r *http.Request) {
	goalID := r.PathValue("id")

	var req logProgressRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	params := service.LogProgressParams{
		Value: *req.Value,
		Note:  req.Note,
	}
	if req.LogDate != "" {
		date, err := parseDate(req.LogDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid logDate")
			return
		}
		params.LogDate = &date
	}

	log, goal, err := h.logService.LogProgress(goalID, params, time.Now())
	if errors.Is(err, repository.ErrGoalNotFound) {
		respondError(w, http.StatusNotFound, "goal not found")
		return
	}
	if err != nil {
		slog.Error("failed to log progress", "error", err, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "failed to log progress")
		return
	}

	respondJSON(w, http.StatusCreated, logResponse{Log: log, Goal: goal})
}

type editLogRequest struct {
	Value   *int    `json:"value"`
	Note    *string `json:"note"`
	LogDate *string `json:"logDate" validate:"omitempty,datetime=2006-01-02"`
}

func (h *GoalHandler) EditLog(w http.ResponseWriter, r *http.Request) {
	goalID := r.PathValue("id")
	logID := r.PathValue("logId")

	var req editLogRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	params := service.EditLogParams{
		Value: req.Value,
		Note:  req.Note,
	}
	if req.LogDate != nil {
		date, err := parseDate(*req.LogDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid logDate")
			return
		}
		params.LogDate = &date
	}

	log, goal, err := h.logService.EditLog(goalID, logID, params, time.Now())
	if errors.Is(err, repository.ErrGoalNotFound) || errors.Is(err, repository.ErrGoalLogNotFound) {
		respondError(w, http.StatusNotFound, "goal or log not found")
		return
	}
	if err != nil {
		slog.Error("failed to edit log", "error", err, "goal_id", goalID, "log_id", logID)
		respondError(w, http.StatusInternalServerError, "failed to edit log")
		return
	}

	respondJSON(w, http.StatusOK, logResponse{Log: log, Goal: goal})
}

func (h *GoalHandler) Stats(w http.ResponseWriter, r *http.Request) {
	goalID := r.PathValue("id")

	stats, err := h.statsService.GoalStats(goalID, time.Now())
	if errors.Is(err, repository.ErrGoalNotFound) {
		respondError(w, http.StatusNotFound, "goal not found")
		return
	}
	if err != nil {
		slog.Error("failed to compute goal stats", "error", err, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
