package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func log(goalID string, d time.Time, value int) *model.GoalLog {
	return &model.GoalLog{
		ID:      uuid.New().String(),
		GoalID:  goalID,
		LogDate: d,
		Value:   value,
	}
}

func TestReadingVelocityAndProjection(t *testing.T) {
	asOf := date(2025, 3, 6)
	goal := &model.Goal{ID: "g", Type: model.GoalTypeReading, TotalPages: 300, CurrentPage: 50}
	logs := []*model.GoalLog{
		log("g", date(2025, 3, 6), 50),
		log("g", date(2025, 3, 1), 0),
	}

	stats := ComputeStats(goal, logs, nil, asOf)

	require.NotNil(t, stats.Velocity)
	assert.Equal(t, 10.0, *stats.Velocity)
	require.NotNil(t, stats.DaysRemaining)
	assert.Equal(t, 25, *stats.DaysRemaining) // ceil(250/10)
	require.NotNil(t, stats.EstimatedFinishDate)
	assert.Equal(t, date(2025, 3, 31), *stats.EstimatedFinishDate)
	assert.Equal(t, 17, stats.ProgressPercent) // round(50/300*100)
}

func TestReadingPaceNeedsTwoLogsAndForwardMotion(t *testing.T) {
	goal := &model.Goal{ID: "g", Type: model.GoalTypeReading, TotalPages: 300, CurrentPage: 50}
	asOf := date(2025, 3, 6)

	stats := ComputeStats(goal, []*model.GoalLog{log("g", asOf, 50)}, nil, asOf)
	assert.Nil(t, stats.Velocity)
	assert.Nil(t, stats.DaysRemaining)
	assert.Nil(t, stats.EstimatedFinishDate)

	// re-reading backward: zero or negative velocity projects nothing
	backward := []*model.GoalLog{
		log("g", date(2025, 3, 6), 20),
		log("g", date(2025, 3, 1), 50),
	}
	stats = ComputeStats(goal, backward, nil, asOf)
	assert.Nil(t, stats.Velocity)
	assert.Nil(t, stats.EstimatedFinishDate)
}

func TestFrequencyPeriodProgress(t *testing.T) {
	// Wednesday; week starts Monday 2025-03-10
	asOf := date(2025, 3, 12)
	goal := &model.Goal{ID: "g", Type: model.GoalTypeFrequency, FrequencyPeriod: model.PeriodWeekly, TargetValue: 4}
	logs := []*model.GoalLog{
		log("g", date(2025, 3, 12), 1),
		log("g", date(2025, 3, 11), 0),
		log("g", date(2025, 3, 10), 1),
		log("g", date(2025, 3, 9), 1), // Sunday, previous week
		log("g", date(2025, 3, 8), 1),
	}

	stats := ComputeStats(goal, logs, nil, asOf)

	require.NotNil(t, stats.PeriodProgress)
	assert.Equal(t, 2, stats.PeriodProgress.Current)
	assert.Equal(t, 4, stats.PeriodProgress.Target)
	assert.Equal(t, 50, stats.ProgressPercent)
}

func TestFrequencyZeroTarget(t *testing.T) {
	goal := &model.Goal{ID: "g", Type: model.GoalTypeFrequency, FrequencyPeriod: model.PeriodDaily}
	stats := ComputeStats(goal, nil, nil, date(2025, 3, 12))

	assert.Zero(t, stats.ProgressPercent)
	require.NotNil(t, stats.PeriodProgress)
	assert.Zero(t, stats.PeriodProgress.Target)
}

func TestNumericSubGoalRollup(t *testing.T) {
	goal := &model.Goal{ID: "g", Type: model.GoalTypeNumeric, TargetValue: 100, CurrentValue: 10}
	subGoals := []*model.Goal{
		{ID: "a", Type: model.GoalTypeNumeric, TargetValue: 10, CurrentValue: 10},
		{ID: "b", Type: model.GoalTypeNumeric, TargetValue: 5, CurrentValue: 2},
	}

	stats := ComputeStats(goal, nil, subGoals, date(2025, 3, 12))

	assert.Equal(t, 1, stats.SubGoalsCompleted)
	assert.Equal(t, 50, stats.ProgressPercent, "with sub-goals the roll-up wins over currentValue")
}

func TestSubGoalCompletionIgnoresReadingPages(t *testing.T) {
	// a reading sub-goal is judged by targetValue/currentValue even though
	// it tracks pages; finished pages alone do not count it complete
	goal := &model.Goal{ID: "g", Type: model.GoalTypeNumeric}
	subGoals := []*model.Goal{
		{ID: "r", Type: model.GoalTypeReading, TotalPages: 200, CurrentPage: 200},
	}

	stats := ComputeStats(goal, nil, subGoals, date(2025, 3, 12))
	assert.Zero(t, stats.SubGoalsCompleted)
}

func TestNumericProgressClamped(t *testing.T) {
	goal := &model.Goal{ID: "g", Type: model.GoalTypeNumeric, TargetValue: 10, CurrentValue: 25}
	stats := ComputeStats(goal, nil, nil, date(2025, 3, 12))
	assert.Equal(t, 100, stats.ProgressPercent)
}

func TestStreakGraceWindow(t *testing.T) {
	asOf := date(2025, 3, 12)
	goal := &model.Goal{ID: "g", Type: model.GoalTypeNumeric}

	// yesterday and the day before, nothing today: today does not break it
	logs := []*model.GoalLog{
		log("g", date(2025, 3, 11), 1),
		log("g", date(2025, 3, 10), 1),
	}
	stats := ComputeStats(goal, logs, nil, asOf)
	assert.Equal(t, 2, stats.Streak)

	// gap at yesterday ends the scan
	gapped := []*model.GoalLog{
		log("g", date(2025, 3, 12), 1),
		log("g", date(2025, 3, 10), 1),
	}
	stats = ComputeStats(goal, gapped, nil, asOf)
	assert.Equal(t, 1, stats.Streak)

	stats = ComputeStats(goal, nil, nil, asOf)
	assert.Zero(t, stats.Streak)
}

func TestComputeStatsIsDeterministic(t *testing.T) {
	asOf := date(2025, 3, 12)
	goal := &model.Goal{ID: "g", Type: model.GoalTypeReading, TotalPages: 300, CurrentPage: 50}
	logs := []*model.GoalLog{
		log("g", date(2025, 3, 6), 50),
		log("g", date(2025, 3, 1), 0),
	}

	first := ComputeStats(goal, logs, nil, asOf)
	second := ComputeStats(goal, logs, nil, asOf)
	assert.Equal(t, first, second)
}

func TestPeriodStart(t *testing.T) {
	wed := date(2025, 3, 12)

	assert.Equal(t, date(2025, 3, 10), periodStart(model.PeriodWeekly, wed))
	assert.Equal(t, date(2025, 3, 1), periodStart(model.PeriodMonthly, wed))
	assert.Equal(t, wed, periodStart(model.PeriodDaily, wed))

	// a Monday is its own week start; Sunday belongs to the prior Monday
	assert.Equal(t, date(2025, 3, 10), periodStart(model.PeriodWeekly, date(2025, 3, 10)))
	assert.Equal(t, date(2025, 3, 3), periodStart(model.PeriodWeekly, date(2025, 3, 9)))
}
