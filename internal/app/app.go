package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lifetrackhq/lifetrack/internal/config"
	"github.com/lifetrackhq/lifetrack/internal/db"
	"github.com/lifetrackhq/lifetrack/internal/repository"
	"github.com/lifetrackhq/lifetrack/internal/service"
)

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	GoalService      *service.GoalService
	GoalLogService   *service.GoalLogService
	StatsService     *service.StatsService
	TaskService      *service.TaskService
	IntegrityService *service.IntegrityService
	ExpenseService   *service.ExpenseService
	WorkLogService   *service.WorkLogService
	WeeklyService    *service.WeeklyService
}

func New(cfg *config.Config) (*App, error) {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	goalRepository := repository.NewGoalRepository(database)
	goalLogRepository := repository.NewGoalLogRepository(database)
	goalRelationRepository := repository.NewGoalRelationRepository(database)
	taskRepository := repository.NewTaskRepository(database)
	integrityRepository := repository.NewIntegrityLogRepository(database)
	expenseRepository := repository.NewExpenseRepository(database)
	workLogRepository := repository.NewWorkLogRepository(database)

	// Services
	goalService := service.NewGoalService(goalRepository, goalRelationRepository)
	goalLogService := service.NewGoalLogService(goalRepository, goalLogRepository)
	statsService := service.NewStatsService(goalRepository, goalLogRepository)
	taskService := service.NewTaskService(taskRepository)
	integrityService := service.NewIntegrityService(integrityRepository)
	expenseService := service.NewExpenseService(expenseRepository)
	workLogService := service.NewWorkLogService(workLogRepository)
	weeklyService := service.NewWeeklyService(goalService, statsService, integrityService, expenseService, workLogService)

	return &App{
		Cfg:              cfg,
		DB:               database,
		GoalService:      goalService,
		GoalLogService:   goalLogService,
		StatsService:     statsService,
		TaskService:      taskService,
		IntegrityService: integrityService,
		ExpenseService:   expenseService,
		WorkLogService:   workLogService,
		WeeklyService:    weeklyService,
	}, nil
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
