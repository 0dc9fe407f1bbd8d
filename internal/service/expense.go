package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack/internal/model"
	"github.com/lifetrackhq/lifetrack/internal/repository"
)

type ExpenseService struct {
	repo repository.ExpenseRepository
}

func NewExpenseService(repo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

type CreateExpenseParams struct {
	Amount      int
	Category    string
	Note        string
	ExpenseDate *time.Time
	Recurring   bool
}

func (s *ExpenseService) Create(p CreateExpenseParams) (*model.Expense, error) {
	now := time.Now()
	date := dateOnly(now)
	if p.ExpenseDate != nil {
		date = dateOnly(*p.ExpenseDate)
	}

	expense := &model.Expense{
		ID:          uuid.New().String(),
		Amount:      p.Amount,
		Category:    p.Category,
		Note:        p.Note,
		ExpenseDate: date,
		Recurring:   p.Recurring,
		CreatedAt:   now,
	}

	err := s.repo.Create(expense)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return expense, nil
}

func (s *ExpenseService) Range(from, to time.Time) ([]*model.Expense, error) {
	return s.repo.Range(dateOnly(from), dateOnly(to))
}

// GenerateRecurring materializes this month's copy of every recurring
// expense template that has none yet for asOf's month. Copies are dated
// the 1st of the month and point back at their template, which makes the
// operation idempotent: a second call in the same month creates nothing.
func (s *ExpenseService) GenerateRecurring(asOf time.Time) ([]*model.Expense, error) {
	templates, err := s.repo.RecurringTemplates()
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	var created []*model.Expense
	for _, tpl := range templates {
		count, err := s.repo.CountGeneratedInRange(tpl.ID, monthStart, nextMonth)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			continue
		}

		sourceID := tpl.ID
		expense := &model.Expense{
			ID:                uuid.New().String(),
			Amount:            tpl.Amount,
			Category:          tpl.Category,
			Note:              tpl.Note,
			ExpenseDate:       monthStart,
			RecurringSourceID: &sourceID,
			CreatedAt:         time.Now(),
		}

		err = s.repo.Create(expense)
		if err != nil {
			return nil, fmt.Errorf("failed to generate recurring expense: %w", err)
		}
		created = append(created, expense)
	}

	if len(created) > 0 {
		slog.Info("generated recurring expenses", "count", len(created), "month", monthStart.Format("2006-01"))
	}

	return created, nil
}
