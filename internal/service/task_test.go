package service

import (
	"testing"

	"github.com/lifetrackhq/lifetrack/internal/model"
	"github.com/lifetrackhq/lifetrack/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskService(t *testing.T) *TaskService {
	t.Helper()
	return NewTaskService(repository.NewTaskRepository(newTestDB(t)))
}

func TestCompleteTaskGatedBySubtasks(t *testing.T) {
	s := newTaskService(t)

	parent, err := s.Create(CreateTaskParams{Title: "release"})
	require.NoError(t, err)
	sub, err := s.Create(CreateTaskParams{Title: "write changelog", ParentTaskID: parent.ID})
	require.NoError(t, err)

	_, err = s.Complete(parent.ID)
	assert.ErrorIs(t, err, ErrSubtasksOpen)

	_, err = s.Complete(sub.ID)
	require.NoError(t, err)

	done, err := s.Complete(parent.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusDone, done.Status)
	assert.NotNil(t, done.CompletedAt)
}

func TestCreateTaskWithUnknownParent(t *testing.T) {
	s := newTaskService(t)

	_, err := s.Create(CreateTaskParams{Title: "orphan", ParentTaskID: "nope"})
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
}

func TestSoftDeletedSubtaskDoesNotGate(t *testing.T) {
	s := newTaskService(t)

	parent, err := s.Create(CreateTaskParams{Title: "parent"})
	require.NoError(t, err)
	sub, err := s.Create(CreateTaskParams{Title: "abandoned", ParentTaskID: parent.ID})
	require.NoError(t, err)

	require.NoError(t, s.SoftDelete(sub.ID))

	_, err = s.Complete(parent.ID)
	assert.NoError(t, err)
}
