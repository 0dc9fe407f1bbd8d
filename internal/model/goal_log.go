package model

import (
	"time"
)

// GoalLog is one dated progress observation against a goal. At most one
// log exists per (goal, calendar date); the log date is always midnight UTC.
type GoalLog struct {
	ID        string    `db:"id" json:"id"`
	GoalID    string    `db:"goal_id" json:"goalId"`
	LogDate   time.Time `db:"log_date" json:"logDate"`
	Value     int       `db:"value" json:"value"`
	Note      string    `db:"note" json:"note,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
