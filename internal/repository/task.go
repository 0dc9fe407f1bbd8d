package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lifetrackhq/lifetrack/internal/model"
)

var (
	ErrTaskNotFound = errors.New("task not found")
)

type TaskRepository interface {
	Create(task *model.Task) error
	ByID(taskID string) (*model.Task, error)
	Update(task *model.Task) error
	ActiveTopLevel() ([]*model.Task, error)
	Subtasks(parentID string) ([]*model.Task, error)
	CountOpenSubtasks(parentID string) (int, error)
}

type taskRepository struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(task *model.Task) error {
	query := `INSERT INTO tasks (id, title, note, parent_task_id, status, due_date, is_active, created_at, completed_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query,
		task.ID,
		task.Title,
		task.Note,
		task.ParentTaskID,
		task.Status,
		task.DueDate,
		task.IsActive,
		task.CreatedAt,
		task.CompletedAt,
	)

	return err
}

func (r *taskRepository) ByID(taskID string) (*model.Task, error) {
	task := &model.Task{}
	query := `SELECT * FROM tasks WHERE id = $1`

	err := r.db.Get(task, query, taskID)
	if err == sql.ErrNoRows {
		return nil, ErrTaskNotFound
	}

	return task, err
}

func (r *taskRepository) Update(task *model.Task) error {
	query := `UPDATE tasks
	          SET title = $1, note = $2, status = $3, due_date = $4, is_active = $5, completed_at = $6
	          WHERE id = $7`

	result, err := r.db.Exec(query,
		task.Title,
		task.Note,
		task.Status,
		task.DueDate,
		task.IsActive,
		task.CompletedAt,
		task.ID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (r *taskRepository) ActiveTopLevel() ([]*model.Task, error) {
	var tasks []*model.Task
	query := `SELECT * FROM tasks
	          WHERE is_active = $1 AND parent_task_id IS NULL
	          ORDER BY created_at DESC`

	err := r.db.Select(&tasks, query, true)
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *taskRepository) Subtasks(parentID string) ([]*model.Task, error) {
	var tasks []*model.Task
	query := `SELECT * FROM tasks
	          WHERE parent_task_id = $1 AND is_active = $2
	          ORDER BY created_at ASC`

	err := r.db.Select(&tasks, query, parentID, true)
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *taskRepository) CountOpenSubtasks(parentID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM tasks
	          WHERE parent_task_id = $1 AND is_active = $2 AND status != $3`

	err := r.db.QueryRow(query, parentID, true, model.TaskStatusDone).Scan(&count)
	return count, err
}
