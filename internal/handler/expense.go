package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/lifetrackhq/lifetrack/internal/model"
	"github.com/lifetrackhq/lifetrack/internal/service"
)

type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

type createExpenseRequest struct {
	Amount      *int   `json:"amount" validate:"required,min=0"`
	Category    string `json:"category" validate:"required"`
	Note        string `json:"note"`
	ExpenseDate string `json:"expenseDate" validate:"omitempty,datetime=2006-01-02"`
	Recurring   bool   `json:"recurring"`
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	params := service.CreateExpenseParams{
		Amount:    *req.Amount,
		Category:  req.Category,
		Note:      req.Note,
		Recurring: req.Recurring,
	}
	if req.ExpenseDate != "" {
		date, err := parseDate(req.ExpenseDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid expenseDate")
			return
		}
		params.ExpenseDate = &date
	}

	expense, err := h.expenseService.Create(params)
	if err != nil {
		slog.Error("failed to create expense", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create expense")
		return
	}

	respondJSON(w, http.StatusCreated, expense)
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
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

	expenses, err := h.expenseService.Range(from, to)
	if err != nil {
		slog.Error("failed to list expenses", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list expenses")
		return
	}

	if expenses == nil {
		expenses = []*model.Expense{}
	}
	respondJSON(w, http.StatusOK, expenses)
}

func (h *ExpenseHandler) GenerateRecurring(w http.ResponseWriter, r *http.Request) {
	created, err := h.expenseService.GenerateRecurring(time.Now())
	if err != nil {
		slog.Error("failed to generate recurring expenses", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to generate recurring expenses")
		return
	}

	if created == nil {
		created = []*model.Expense{}
	}
	respondJSON(w, http.StatusOK, created)
}
