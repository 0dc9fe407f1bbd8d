package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/lifetrackhq/lifetrack/internal/service"
)

type ReviewHandler struct {
	weeklyService *service.WeeklyService
}

func NewReviewHandler(weeklyService *service.WeeklyService) *ReviewHandler {
	return &ReviewHandler{weeklyService: weeklyService}
}

// Weekly serves the weekly review. The week defaults to the one containing
// today, starting on Monday; ?start=YYYY-MM-DD selects an earlier week.
func (h *ReviewHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	start := mondayOf(now)
	if s := r.URL.Query().Get("start"); s != "" {
		parsed, err := parseDate(s)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid start date")
			return
		}
		start = parsed
	}

	summary, err := h.weeklyService.Summary(start, now)
	if err != nil {
		slog.Error("failed to build weekly summary", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to build weekly summary")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

func mondayOf(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return d.AddDate(0, 0, -((int(d.Weekday()) + 6) % 7))
}
