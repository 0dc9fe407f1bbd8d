package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLatestOrdersByDateThenID(t *testing.T) {
	database := newTestDB(t)
	goals := NewGoalRepository(database)
	logs := NewGoalLogRepository(database)

	goal := insertGoal(t, goals, "g", day(2025, 3, 1))
	insertLog(t, logs, goal.ID, day(2025, 3, 1), 10)
	newest := insertLog(t, logs, goal.ID, day(2025, 3, 5), 40)
	insertLog(t, logs, goal.ID, day(2025, 3, 3), 20)

	latest, err := logs.Latest(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, newest.ID, latest.ID)
	assert.Equal(t, 40, latest.Value)
}

func TestRecentLimitsAndOrders(t *testing.T) {
	database := newTestDB(t)
	goals := NewGoalRepository(database)
	logs := NewGoalLogRepository(database)

	goal := insertGoal(t, goals, "g", day(2025, 1, 1))
	for i := 0; i < 40; i++ {
		insertLog(t, logs, goal.ID, day(2025, 1, 1).AddDate(0, 0, i), i)
	}

	recent, err := logs.Recent(goal.ID, 30)
	require.NoError(t, err)
	require.Len(t, recent, 30)
	assert.Equal(t, 39, recent[0].Value, "newest first")
	assert.Equal(t, 10, recent[29].Value)
}

func TestCountCompletedSince(t *testing.T) {
	database := newTestDB(t)
	goals := NewGoalRepository(database)
	logs := NewGoalLogRepository(database)

	goal := insertGoal(t, goals, "g", day(2025, 3, 1))
	insertLog(t, logs, goal.ID, day(2025, 3, 10), 1)
	insertLog(t, logs, goal.ID, day(2025, 3, 11), 0) // logged but not done
	insertLog(t, logs, goal.ID, day(2025, 3, 12), 1)
	insertLog(t, logs, goal.ID, day(2025, 3, 7), 1) // before the window

	count, err := logs.CountCompletedSince(goal.ID, day(2025, 3, 10))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestUniqueLogPerGoalAndDate(t *testing.T) {
	database := newTestDB(t)
	goals := NewGoalRepository(database)
	logs := NewGoalLogRepository(database)

	goal := insertGoal(t, goals, "g", day(2025, 3, 1))
	insertLog(t, logs, goal.ID, day(2025, 3, 10), 1)

	dup := &model.GoalLog{
		ID:        uuid.New().String(),
		GoalID:    goal.ID,
		LogDate:   day(2025, 3, 10),
		Value:     2,
		CreatedAt: day(2025, 3, 10),
	}
	assert.Error(t, logs.Insert(dup), "second log for the same date violates the unique index")
}
