package service

import (
	"testing"

	"github.com/lifetrackhq/lifetrack/internal/model"
	"github.com/lifetrackhq/lifetrack/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGoalDefaults(t *testing.T) {
	s := newTestServices(t)

	goal := frequencyGoal(t, s, "", 4)
	assert.Equal(t, model.PeriodWeekly, goal.FrequencyPeriod, "frequency period defaults to weekly")
	assert.True(t, goal.IsActive)

	// type-specific fields are only persisted for the matching type
	numeric, err := s.goals.Create(CreateGoalParams{Title: "n", Type: model.GoalTypeNumeric, TargetValue: 10, TotalPages: 300, FrequencyPeriod: model.PeriodDaily})
	require.NoError(t, err)
	assert.Zero(t, numeric.TotalPages)
	assert.Empty(t, numeric.FrequencyPeriod)
}

func TestCreateGoalWithUnknownParent(t *testing.T) {
	s := newTestServices(t)

	_, err := s.goals.Create(CreateGoalParams{Title: "child", Type: model.GoalTypeNumeric, ParentID: "nope"})
	assert.ErrorIs(t, err, repository.ErrGoalNotFound)
}

func TestTopLevelAndSubGoalQueries(t *testing.T) {
	s := newTestServices(t)

	parent := numericGoal(t, s, 2)
	older, err := s.goals.Create(CreateGoalParams{Title: "sub a", Type: model.GoalTypeNumeric, TargetValue: 5, ParentID: parent.ID})
	require.NoError(t, err)
	newer, err := s.goals.Create(CreateGoalParams{Title: "sub b", Type: model.GoalTypeNumeric, TargetValue: 5, ParentID: parent.ID})
	require.NoError(t, err)

	top, err := s.goals.ActiveTopLevel()
	require.NoError(t, err)
	require.Len(t, top, 1, "children are not top-level")
	assert.Equal(t, parent.ID, top[0].ID)

	subs, err := s.goals.SubGoals(parent.ID)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, older.ID, subs[0].ID, "sub-goals are ordered oldest first")
	assert.Equal(t, newer.ID, subs[1].ID)
}

func TestUpdateGoalIsPartial(t *testing.T) {
	s := newTestServices(t)

	goal := readingGoal(t, s, 300)

	title := "renamed"
	updated, err := s.goals.Update(goal.ID, UpdateGoalParams{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, 300, updated.TotalPages, "unsupplied fields are untouched")
	assert.Equal(t, model.GoalTypeReading, updated.Type, "type is immutable")

	_, err = s.goals.Update("nope", UpdateGoalParams{Title: &title})
	assert.ErrorIs(t, err, repository.ErrGoalNotFound)
}

func TestSoftDelete(t *testing.T) {
	s := newTestServices(t)

	goal := numericGoal(t, s, 10)
	_, _, err := s.logs.LogProgress(goal.ID, LogProgressParams{Value: 3}, date(2025, 3, 12))
	require.NoError(t, err)

	require.NoError(t, s.goals.SoftDelete(goal.ID))

	top, err := s.goals.ActiveTopLevel()
	require.NoError(t, err)
	assert.Empty(t, top, "deleted goals leave active queries")

	// goal and its logs stay readable by id
	kept, err := s.goals.ByID(goal.ID)
	require.NoError(t, err)
	assert.False(t, kept.IsActive)

	logs, err := s.logs.Recent(goal.ID)
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	assert.ErrorIs(t, s.goals.SoftDelete("nope"), repository.ErrGoalNotFound)
}
