package handler

import (
	"log/slog"
	"net/http"

	"github.com/lifetrackhq/lifetrack/internal/model"
	"github.com/lifetrackhq/lifetrack/internal/service"
)

type WorkLogHandler struct {
	workLogService *service.WorkLogService
}

func NewWorkLogHandler(workLogService *service.WorkLogService) *WorkLogHandler {
	return &WorkLogHandler{workLogService: workLogService}
}

type upsertWorkLogRequest struct {
	Hours *float64 `json:"hours" validate:"required,gte=0,lte=24"`
	Note  string   `json:"note"`
}

func (h *WorkLogHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(r.PathValue("date"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid date")
		return
	}

	var req upsertWorkLogRequest
	err = decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	log, err := h.workLogService.Upsert(date, *req.Hours, req.Note)
	if err != nil {
		slog.Error("failed to upsert work log", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save work log")
		return
	}

	respondJSON(w, http.StatusOK, log)
}

func (h *WorkLogHandler) List(w http.ResponseWriter, r *http.Request) {
	from, err := parseDate(r.URL.Query().Get("from"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid from date")
		return
	}
	to, err := parseDate(r.URL.Query().Get("to"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid to date")
		return
	}

	logs, err := h.workLogService.Range(from, to)
	if err != nil {
		slog.Error("failed to list work logs", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list work logs")
		return
	}

	if logs == nil {
		logs = []*model.WorkLog{}
	}
	respondJSON(w, http.StatusOK, logs)
}
