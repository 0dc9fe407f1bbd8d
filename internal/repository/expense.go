package repository

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lifetrackhq/lifetrack/internal/model"
)

type ExpenseRepository interface {
	Create(expense *model.Expense) error
	Range(from, to time.Time) ([]*model.Expense, error)
	RecurringTemplates() ([]*model.Expense, error)
	CountGeneratedInRange(sourceID string, from, to time.Time) (int, error)
}

type expenseRepository struct {
	db *sqlx.DB
}

func NewExpenseRepository(db *sqlx.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(expense *model.Expense) error {
	query := `INSERT INTO expenses (id, amount, category, note, expense_date, recurring, recurring_source_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		expense.ID,
		expense.Amount,
		expense.Category,
		expense.Note,
		expense.ExpenseDate,
		expense.Recurring,
		expense.RecurringSourceID,
		expense.CreatedAt,
	)

	return err
}

// Range returns expenses with from <= expense_date < to, oldest first.
func (r *expenseRepository) Range(from, to time.Time) ([]*model.Expense, error) {
	var expenses []*model.Expense
	query := `SELECT * FROM expenses
	          WHERE expense_date >= $1 AND expense_date < $2
	          ORDER BY expense_date ASC, created_at ASC`

	err := r.db.Select(&expenses, query, from, to)
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

func (r *expenseRepository) RecurringTemplates() ([]*model.Expense, error) {
	var expenses []*model.Expense
	query := `SELECT * FROM expenses WHERE recurring = $1 ORDER BY created_at ASC`

	err := r.db.Select(&expenses, query, true)
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

func (r *expenseRepository) CountGeneratedInRange(sourceID string, from, to time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM expenses
	          WHERE recurring_source_id = $1 AND expense_date >= $2 AND expense_date < $3`

	err := r.db.QueryRow(query, sourceID, from, to).Scan(&count)
	return count, err
}
