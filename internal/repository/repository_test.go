package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lifetrackhq/lifetrack/internal/db"
	"github.com/lifetrackhq/lifetrack/internal/model"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	database.SetMaxOpenConns(1)

	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))

	t.Cleanup(func() { database.Close() })
	return database
}

func insertGoal(t *testing.T, repo GoalRepository, title string, createdAt time.Time) *model.Goal {
	t.Helper()
	goal := &model.Goal{
		ID:        uuid.New().String(),
		Title:     title,
		Type:      model.GoalTypeNumeric,
		StartDate: createdAt,
		IsActive:  true,
		CreatedAt: createdAt,
	}
	require.NoError(t, repo.Create(goal))
	return goal
}

func insertLog(t *testing.T, repo GoalLogRepository, goalID string, logDate time.Time, value int) *model.GoalLog {
	t.Helper()
	log := &model.GoalLog{
		ID:        uuid.New().String(),
		GoalID:    goalID,
		LogDate:   logDate,
		Value:     value,
		CreatedAt: logDate,
	}
	require.NoError(t, repo.Insert(log))
	return log
}
