package model

import (
	"time"
)

type WorkLog struct {
	ID        string    `db:"id" json:"id"`
	LogDate   time.Time `db:"log_date" json:"logDate"`
	Hours     float64   `db:"hours" json:"hours"`
	Note      string    `db:"note" json:"note,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
