package service

import (
	"time"

	"github.com/lifetrackhq/lifetrack/internal/model"
)

// dateOnly truncates t to midnight UTC. Every calendar-date field in the
// store holds this normalized form, so equality and range comparisons on
// dates stay exact.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// periodStart returns the start of the frequency period containing asOf:
// Monday of the week for weekly, the 1st of the month for monthly, asOf's
// own date for daily.
func periodStart(period string, asOf time.Time) time.Time {
	d := dateOnly(asOf)

	switch period {
	case model.PeriodWeekly:
		offset := (int(d.Weekday()) + 6) % 7 // Monday = 0
		return d.AddDate(0, 0, -offset)
	case model.PeriodMonthly:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	default: // daily
		return d
	}
}
