package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack/internal/model"
	"github.com/lifetrackhq/lifetrack/internal/repository"
)

var (
	ErrSubtasksOpen = errors.New("task has unfinished subtasks")
)

type TaskService struct {
	repo repository.TaskRepository
}

func NewTaskService(repo repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

type CreateTaskParams struct {
	Title        string
	Note         string
	ParentTaskID string
	DueDate      *time.Time
}

func (s *TaskService) Create(p CreateTaskParams) (*model.Task, error) {
	var parentID *string
	if p.ParentTaskID != "" {
		_, err := s.repo.ByID(p.ParentTaskID)
		if err != nil {
			return nil, err
		}
		parentID = &p.ParentTaskID
	}

	task := &model.Task{
		ID:           uuid.New().String(),
		Title:        p.Title,
		Note:         p.Note,
		ParentTaskID: parentID,
		Status:       model.TaskStatusTodo,
		DueDate:      p.DueDate,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	err := s.repo.Create(task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

type UpdateTaskParams struct {
	Title   *string
	Note    *string
	DueDate *time.Time
}

func (s *TaskService) Update(taskID string, p UpdateTaskParams) (*model.Task, error) {
	task, err := s.repo.ByID(taskID)
	if err != nil {
		return nil, err
	}

	if p.Title != nil {
		task.Title = *p.Title
	}
	if p.Note != nil {
		task.Note = *p.Note
	}
	if p.DueDate != nil {
		task.DueDate = p.DueDate
	}

	err = s.repo.Update(task)
	if err != nil {
		return nil, err
	}

	return task, nil
}

// Complete marks the task done. A parent task cannot be completed while it
// still has active unfinished subtasks.
func (s *TaskService) Complete(taskID string) (*model.Task, error) {
	task, err := s.repo.ByID(taskID)
	if err != nil {
		return nil, err
	}

	open, err := s.repo.CountOpenSubtasks(taskID)
	if err != nil {
		return nil, err
	}
	if open > 0 {
		return nil, ErrSubtasksOpen
	}

	now := time.Now()
	task.Status = model.TaskStatusDone
	task.CompletedAt = &now

	err = s.repo.Update(task)
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) ActiveTopLevel() ([]*model.Task, error) {
	return s.repo.ActiveTopLevel()
}

func (s *TaskService) Subtasks(parentID string) ([]*model.Task, error) {
	return s.repo.Subtasks(parentID)
}

func (s *TaskService) SoftDelete(taskID string) error {
	task, err := s.repo.ByID(taskID)
	if err != nil {
		return err
	}

	task.IsActive = false
	return s.repo.Update(task)
}
