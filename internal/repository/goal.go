package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lifetrackhq/lifetrack/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(goalID string) (*model.Goal, error)
	Update(goal *model.Goal) error
	ActiveTopLevel() ([]*model.Goal, error)
	SubGoals(parentID string) ([]*model.Goal, error)
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (id, title, type, target_value, unit, current_value, total_pages, current_page, frequency_period, start_date, target_date, is_active, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.Title,
		goal.Type,
		goal.TargetValue,
		goal.Unit,
		goal.CurrentValue,
		goal.TotalPages,
		goal.CurrentPage,
		goal.FrequencyPeriod,
		goal.StartDate,
		goal.TargetDate,
		goal.IsActive,
		goal.CreatedAt,
	)

	return err
}

func (r *goalRepository) ByID(goalID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE id = $1`

	err := r.db.Get(goal, query, goalID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

func (r *goalRepository) Update(goal *model.Goal) error {
	query := `UPDATE goals
	          SET title = $1, target_value = $2, unit = $3, current_value = $4, total_pages = $5, current_page = $6, frequency_period = $7, target_date = $8, is_active = $9
	          WHERE id = $10`

	result, err := r.db.Exec(query,
		goal.Title,
		goal.TargetValue,
		goal.Unit,
		goal.CurrentValue,
		goal.TotalPages,
		goal.CurrentPage,
		goal.FrequencyPeriod,
		goal.TargetDate,
		goal.IsActive,
		goal.ID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

// ActiveTopLevel returns active goals that are not the child side of any
// relation edge, most recently created first.
func (r *goalRepository) ActiveTopLevel() ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals
	          WHERE is_active = $1
	            AND id NOT IN (SELECT child_goal_id FROM goal_relations)
	          ORDER BY created_at DESC`

	err := r.db.Select(&goals, query, true)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) SubGoals(parentID string) ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT g.* FROM goals g
	          JOIN goal_relations rel ON rel.child_goal_id = g.id
	          WHERE rel.parent_goal_id = $1 AND g.is_active = $2
	          ORDER BY g.created_at ASC`

	err := r.db.Select(&goals, query, parentID, true)
	if err != nil {
		return nil, err
	}

	return goals, nil
}
