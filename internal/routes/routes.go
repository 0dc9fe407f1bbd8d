package routes

import (
	"net/http"

	"github.com/lifetrackhq/lifetrack/internal/app"
	"github.com/lifetrackhq/lifetrack/internal/handler"
	"github.com/lifetrackhq/lifetrack/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler()
	goal := handler.NewGoalHandler(app.GoalService, app.GoalLogService, app.StatsService)
	task := handler.NewTaskHandler(app.TaskService)
	integrity := handler.NewIntegrityHandler(app.IntegrityService)
	expense := handler.NewExpenseHandler(app.ExpenseService)
	workLog := handler.NewWorkLogHandler(app.WorkLogService)
	review := handler.NewReviewHandler(app.WeeklyService)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", health.Healthz)

	// Goals
	mux.HandleFunc("POST /goals", goal.Create)
	mux.HandleFunc("GET /goals", goal.List)
	mux.HandleFunc("PATCH /goals/{id}", goal.Update)
	mux.HandleFunc("DELETE /goals/{id}", goal.Delete)
	mux.HandleFunc("GET /goals/{id}/subgoals", goal.SubGoals)
	mux.HandleFunc("POST /goals/{id}/logs", goal.LogProgress)
	mux.HandleFunc("PATCH /goals/{id}/logs/{logId}", goal.EditLog)
	mux.HandleFunc("GET /goals/{id}/stats", goal.Stats)

	// Tasks
	mux.HandleFunc("POST /tasks", task.Create)
	mux.HandleFunc("GET /tasks", task.List)
	mux.HandleFunc("PATCH /tasks/{id}", task.Update)
	mux.HandleFunc("DELETE /tasks/{id}", task.Delete)
	mux.HandleFunc("POST /tasks/{id}/complete", task.Complete)
	mux.HandleFunc("GET /tasks/{id}/subtasks", task.Subtasks)

	// Integrity
	mux.HandleFunc("PUT /integrity/{date}", integrity.Upsert)
	mux.HandleFunc("GET /integrity", integrity.List)

	// Expenses
	mux.HandleFunc("POST /expenses", expense.Create)
	mux.HandleFunc("GET /expenses", expense.List)
	mux.HandleFunc("POST /expenses/recurring/generate", expense.GenerateRecurring)

	// Work log
	mux.HandleFunc("PUT /worklog/{date}", workLog.Upsert)
	mux.HandleFunc("GET /worklog", workLog.List)

	// Weekly review
	mux.HandleFunc("GET /review/weekly", review.Weekly)

	return middleware.Chain(mux,
		middleware.Recover,
		middleware.RequestLogging,
	)
}
