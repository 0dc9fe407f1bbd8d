package model

import (
	"time"
)

// Expense is a single spend record. Amount is in cents. Rows with Recurring
// set act as monthly templates; generated copies point back at the template
// via RecurringSourceID.
type Expense struct {
	ID                string    `db:"id" json:"id"`
	Amount            int       `db:"amount" json:"amount"`
	Category          string    `db:"category" json:"category"`
	Note              string    `db:"note" json:"note,omitempty"`
	ExpenseDate       time.Time `db:"expense_date" json:"expenseDate"`
	Recurring         bool      `db:"recurring" json:"recurring"`
	RecurringSourceID *string   `db:"recurring_source_id" json:"recurringSourceId,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
}
