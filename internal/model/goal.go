package model

import (
	"time"
)

const (
	GoalTypeReading   = "reading"
	GoalTypeFrequency = "frequency"
	GoalTypeNumeric   = "numeric"
)

const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

type Goal struct {
	ID              string     `db:"id" json:"id"`
	Title           string     `db:"title" json:"title"`
	Type            string     `db:"type" json:"type"`
	TargetValue     int        `db:"target_value" json:"targetValue"`
	Unit            string     `db:"unit" json:"unit,omitempty"`
	CurrentValue    int        `db:"current_value" json:"currentValue"`
	TotalPages      int        `db:"total_pages" json:"totalPages,omitempty"`
	CurrentPage     int        `db:"current_page" json:"currentPage,omitempty"`
	FrequencyPeriod string     `db:"frequency_period" json:"frequencyPeriod,omitempty"`
	StartDate       time.Time  `db:"start_date" json:"startDate"`
	TargetDate      *time.Time `db:"target_date" json:"targetDate,omitempty"`
	IsActive        bool       `db:"is_active" json:"isActive"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
}
