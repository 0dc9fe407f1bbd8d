package service

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lifetrackhq/lifetrack/internal/db"
	"github.com/lifetrackhq/lifetrack/internal/model"
	"github.com/lifetrackhq/lifetrack/internal/repository"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	// one connection, or each pooled conn would see its own empty memory db
	database.SetMaxOpenConns(1)

	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))

	t.Cleanup(func() { database.Close() })
	return database
}

type testServices struct {
	goals *GoalService
	logs  *GoalLogService
	stats *StatsService
}

func newTestServices(t *testing.T) testServices {
	t.Helper()

	database := newTestDB(t)
	goalRepo := repository.NewGoalRepository(database)
	logRepo := repository.NewGoalLogRepository(database)
	relationRepo := repository.NewGoalRelationRepository(database)

	return testServices{
		goals: NewGoalService(goalRepo, relationRepo),
		logs:  NewGoalLogService(goalRepo, logRepo),
		stats: NewStatsService(goalRepo, logRepo),
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func readingGoal(t *testing.T, s testServices, totalPages int) *model.Goal {
	t.Helper()
	goal, err := s.goals.Create(CreateGoalParams{Title: "book", Type: model.GoalTypeReading, TotalPages: totalPages})
	require.NoError(t, err)
	return goal
}

func frequencyGoal(t *testing.T, s testServices, period string, target int) *model.Goal {
	t.Helper()
	goal, err := s.goals.Create(CreateGoalParams{Title: "habit", Type: model.GoalTypeFrequency, FrequencyPeriod: period, TargetValue: target})
	require.NoError(t, err)
	return goal
}

func numericGoal(t *testing.T, s testServices, target int) *model.Goal {
	t.Helper()
	goal, err := s.goals.Create(CreateGoalParams{Title: "count", Type: model.GoalTypeNumeric, TargetValue: target})
	require.NoError(t, err)
	return goal
}
