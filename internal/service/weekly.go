package service

import (
	"time"

	"github.com/lifetrackhq/lifetrack/internal/model"
)

type WeeklyGoal struct {
	Goal  *model.Goal `json:"goal"`
	Stats *GoalStats  `json:"stats"`
}

type WeeklySummary struct {
	WeekStart         time.Time      `json:"weekStart"`
	WeekEnd           time.Time      `json:"weekEnd"`
	Goals             []WeeklyGoal   `json:"goals"`
	IntegrityAverage  float64        `json:"integrityAverage"`
	DaysLogged        int            `json:"daysLogged"`
	ExpenseTotal      int            `json:"expenseTotal"`
	ExpenseByCategory map[string]int `json:"expenseByCategory"`
	HoursWorked       float64        `json:"hoursWorked"`
}

// WeeklyService builds the weekly review. It reads goal state only through
// the lifecycle and stats query surfaces and aggregates the week's
// integrity, expense and work entries around it.
type WeeklyService struct {
	goalService      *GoalService
	statsService     *StatsService
	integrityService *IntegrityService
	expenseService   *ExpenseService
	workLogService   *WorkLogService
}

func NewWeeklyService(
	goalService *GoalService,
	statsService *StatsService,
	integrityService *IntegrityService,
	expenseService *ExpenseService,
	workLogService *WorkLogService,
) *WeeklyService {
	return &WeeklyService{
		goalService:      goalService,
		statsService:     statsService,
		integrityService: integrityService,
		expenseService:   expenseService,
		workLogService:   workLogService,
	}
}

func (s *WeeklyService) Summary(weekStart, asOf time.Time) (*WeeklySummary, error) {
	start := dateOnly(weekStart)
	end := start.AddDate(0, 0, 7)

	summary := &WeeklySummary{
		WeekStart:         start,
		WeekEnd:           end,
		Goals:             []WeeklyGoal{},
		ExpenseByCategory: map[string]int{},
	}

	goals, err := s.goalService.ActiveTopLevel()
	if err != nil {
		return nil, err
	}
	for _, goal := range goals {
		stats, err := s.statsService.GoalStats(goal.ID, asOf)
		if err != nil {
			return nil, err
		}
		summary.Goals = append(summary.Goals, WeeklyGoal{Goal: goal, Stats: stats})
	}

	integrity, err := s.integrityService.Range(start, end)
	if err != nil {
		return nil, err
	}
	summary.DaysLogged = len(integrity)
	if len(integrity) > 0 {
		total := 0
		for _, log := range integrity {
			total += log.Score
		}
		summary.IntegrityAverage = float64(total) / float64(len(integrity))
	}

	expenses, err := s.expenseService.Range(start, end)
	if err != nil {
		return nil, err
	}
	for _, expense := range expenses {
		if expense.Recurring {
			continue // templates are not spend
		}
		summary.ExpenseTotal += expense.Amount
		summary.ExpenseByCategory[expense.Category] += expense.Amount
	}

	workLogs, err := s.workLogService.Range(start, end)
	if err != nil {
		return nil, err
	}
	for _, log := range workLogs {
		summary.HoursWorked += log.Hours
	}

	return summary, nil
}
