package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/lifetrackhq/lifetrack/internal/model"
	"github.com/lifetrackhq/lifetrack/internal/service"
)

type IntegrityHandler struct {
	integrityService *service.IntegrityService
}

func NewIntegrityHandler(integrityService *service.IntegrityService) *IntegrityHandler {
	return &IntegrityHandler{integrityService: integrityService}
}

type upsertIntegrityRequest struct {
	Score *int   `json:"score" validate:"required,min=0,max=10"`
	Note  string `json:"note"`
}

func (h *IntegrityHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(r.PathValue("date"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid date")
		return
	}

	var req upsertIntegrityRequest
	err = decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	log, err := h.integrityService.Upsert(date, *req.Score, req.Note)
	if errors.Is(err, service.ErrScoreOutOfRange) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to upsert integrity log", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save integrity log")
		return
	}

	respondJSON(w, http.StatusOK, log)
}

func (h *IntegrityHandler) List(w http.ResponseWriter, r *http.Request) {
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

	logs, err := h.integrityService.Range(from, to)
	if err != nil {
		slog.Error("failed to list integrity logs", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list integrity logs")
		return
	}

	if logs == nil {
		logs = []*model.IntegrityLog{}
	}
	respondJSON(w, http.StatusOK, logs)
}
