package service

import (
	"math"
	"sort"
	"time"

	"github.com/lifetrackhq/lifetrack/internal/model"
	"github.com/lifetrackhq/lifetrack/internal/repository"
)

type PeriodProgress struct {
	Current int `json:"current"`
	Target  int `json:"target"`
}

type GoalStats struct {
	ProgressPercent     int             `json:"progressPercent"`
	Velocity            *float64        `json:"velocity"`
	EstimatedFinishDate *time.Time      `json:"estimatedFinishDate"`
	DaysRemaining       *int            `json:"daysRemaining"`
	Streak              int             `json:"streak"`
	PeriodProgress      *PeriodProgress `json:"periodProgress,omitempty"`
	SubGoalsCompleted   int             `json:"subGoalsCompleted"`
}

// ComputeStats derives a goal's statistics from its current state, its
// most recent logs (newest first, at most recentLogLimit) and its active
// sub-goals. It is a pure function of its arguments; asOf anchors every
// "today" in the calculation.
func ComputeStats(goal *model.Goal, recentLogs []*model.GoalLog, subGoals []*model.Goal, asOf time.Time) GoalStats {
	stats := GoalStats{
		Streak:            computeStreak(recentLogs, asOf),
		SubGoalsCompleted: countCompletedSubGoals(subGoals),
	}

	switch goal.Type {
	case model.GoalTypeReading:
		if goal.TotalPages > 0 {
			stats.ProgressPercent = roundPercent(goal.CurrentPage, goal.TotalPages)
		}
		computeReadingPace(goal, recentLogs, asOf, &stats)

	case model.GoalTypeFrequency:
		ps := periodStart(goal.FrequencyPeriod, asOf)
		current := 0
		for _, log := range recentLogs {
			if log.Value == 1 && !log.LogDate.Before(ps) {
				current++
			}
		}
		stats.PeriodProgress = &PeriodProgress{Current: current, Target: goal.TargetValue}
		if goal.TargetValue > 0 {
			stats.ProgressPercent = roundPercent(current, goal.TargetValue)
		}

	default: // numeric
		if len(subGoals) > 0 {
			stats.ProgressPercent = roundPercent(stats.SubGoalsCompleted, len(subGoals))
		} else if goal.TargetValue > 0 {
			stats.ProgressPercent = roundPercent(goal.CurrentValue, goal.TargetValue)
		}
	}

	if stats.ProgressPercent < 0 {
		stats.ProgressPercent = 0
	}
	if stats.ProgressPercent > 100 {
		stats.ProgressPercent = 100
	}

	return stats
}

// computeReadingPace fills velocity, days remaining and the projected
// finish date from the earliest and latest of the recent logs. With fewer
// than two logs, or a non-positive velocity, all three stay null.
func computeReadingPace(goal *model.Goal, recentLogs []*model.GoalLog, asOf time.Time, stats *GoalStats) {
	if len(recentLogs) < 2 {
		return
	}

	logs := make([]*model.GoalLog, len(recentLogs))
	copy(logs, recentLogs)
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].LogDate.Before(logs[j].LogDate)
	})

	first := logs[0]
	last := logs[len(logs)-1]

	daysDiff := int(last.LogDate.Sub(first.LogDate).Hours() / 24)
	if daysDiff < 1 {
		daysDiff = 1
	}

	pagesDiff := last.Value - first.Value
	velocity := math.Round(float64(pagesDiff)/float64(daysDiff)*10) / 10
	if velocity <= 0 {
		return
	}

	remaining := int(math.Ceil(float64(goal.TotalPages-goal.CurrentPage) / velocity))
	finish := dateOnly(asOf).AddDate(0, 0, remaining)

	stats.Velocity = &velocity
	stats.DaysRemaining = &remaining
	stats.EstimatedFinishDate = &finish
}

// computeStreak counts consecutive logged days scanning back from asOf,
// up to a year. A missing log for asOf itself is a grace window: it
// neither counts nor breaks the streak, so an existing streak survives
// until the day is actually skipped.
func computeStreak(recentLogs []*model.GoalLog, asOf time.Time) int {
	logged := make(map[time.Time]bool, len(recentLogs))
	for _, log := range recentLogs {
		logged[dateOnly(log.LogDate)] = true
	}

	streak := 0
	day := dateOnly(asOf)
	for i := 0; i < 365; i++ {
		if logged[day.AddDate(0, 0, -i)] {
			streak++
		} else if i > 0 {
			break
		}
	}

	return streak
}

// countCompletedSubGoals applies the single completion rule uniformly:
// targetValue set and currentValue at or past it. Reading sub-goals are
// judged by the same fields, not by their page counters.
func countCompletedSubGoals(subGoals []*model.Goal) int {
	completed := 0
	for _, sub := range subGoals {
		if sub.TargetValue > 0 && sub.CurrentValue >= sub.TargetValue {
			completed++
		}
	}
	return completed
}

func roundPercent(current, target int) int {
	return int(math.Round(float64(current) / float64(target) * 100))
}

// StatsService composes the inputs for ComputeStats from the store: the
// goal, its recent logs and its active sub-goals.
type StatsService struct {
	goalRepo repository.GoalRepository
	logRepo  repository.GoalLogRepository
}

func NewStatsService(goalRepo repository.GoalRepository, logRepo repository.GoalLogRepository) *StatsService {
	return &StatsService{
		goalRepo: goalRepo,
		logRepo:  logRepo,
	}
}

func (s *StatsService) GoalStats(goalID string, asOf time.Time) (*GoalStats, error) {
	goal, err := s.goalRepo.ByID(goalID)
	if err != nil {
		return nil, err
	}

	logs, err := s.logRepo.Recent(goalID, recentLogLimit)
	if err != nil {
		return nil, err
	}

	subGoals, err := s.goalRepo.SubGoals(goalID)
	if err != nil {
		return nil, err
	}

	stats := ComputeStats(goal, logs, subGoals, asOf)
	return &stats, nil
}
