package model

import (
	"time"
)

const (
	TaskStatusTodo = "todo"
	TaskStatusDone = "done"
)

type Task struct {
	ID           string     `db:"id" json:"id"`
	Title        string     `db:"title" json:"title"`
	Note         string     `db:"note" json:"note,omitempty"`
	ParentTaskID *string    `db:"parent_task_id" json:"parentTaskId,omitempty"`
	Status       string     `db:"status" json:"status"`
	DueDate      *time.Time `db:"due_date" json:"dueDate,omitempty"`
	IsActive     bool       `db:"is_active" json:"isActive"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	CompletedAt  *time.Time `db:"completed_at" json:"completedAt,omitempty"`
}
