package model

import (
	"time"
)

// IntegrityLog is the daily self-check entry: one row per calendar day
// with a 0-10 score.
type IntegrityLog struct {
	ID        string    `db:"id" json:"id"`
	LogDate   time.Time `db:"log_date" json:"logDate"`
	Score     int       `db:"score" json:"score"`
	Note      string    `db:"note" json:"note,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
