package service

import (
	"testing"

	"github.com/lifetrackhq/lifetrack/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRecurringIsIdempotent(t *testing.T) {
	s := NewExpenseService(repository.NewExpenseRepository(newTestDB(t)))

	tplDate := date(2025, 2, 3)
	_, err := s.Create(CreateExpenseParams{Amount: 1500, Category: "rent", ExpenseDate: &tplDate, Recurring: true})
	require.NoError(t, err)
	_, err = s.Create(CreateExpenseParams{Amount: 900, Category: "gym", ExpenseDate: &tplDate, Recurring: true})
	require.NoError(t, err)

	asOf := date(2025, 3, 15)
	created, err := s.GenerateRecurring(asOf)
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, date(2025, 3, 1), created[0].ExpenseDate)
	assert.NotNil(t, created[0].RecurringSourceID)
	assert.False(t, created[0].Recurring, "generated copies are not templates")

	// second run in the same month creates nothing
	again, err := s.GenerateRecurring(date(2025, 3, 28))
	require.NoError(t, err)
	assert.Empty(t, again)

	// next month generates a fresh set
	april, err := s.GenerateRecurring(date(2025, 4, 2))
	require.NoError(t, err)
	assert.Len(t, april, 2)
}
