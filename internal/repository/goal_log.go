package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lifetrackhq/lifetrack/internal/model"
)

var (
	ErrGoalLogNotFound = errors.New("goal log not found")
)

type GoalLogRepository interface {
	Insert(log *model.GoalLog) error
	Update(log *model.GoalLog) error
	ByID(goalID, logID string) (*model.GoalLog, error)
	ByGoalAndDate(goalID string, date time.Time) (*model.GoalLog, error)
	Latest(goalID string) (*model.GoalLog, error)
	Recent(goalID string, limit int) ([]*model.GoalLog, error)
	CountCompletedSince(goalID string, from time.Time) (int, error)
}

type goalLogRepository struct {
	db *sqlx.DB
}

func NewGoalLogRepository(db *sqlx.DB) GoalLogRepository {
	return &goalLogRepository{db: db}
}

func (r *goalLogRepository) Insert(log *model.GoalLog) error {
	query := `INSERT INTO goal_logs (id, goal_id, log_date, value, note, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		log.ID,
		log.GoalID,
		log.LogDate,
		log.Value,
		log.Note,
		log.CreatedAt,
	)

	return err
}

func (r *goalLogRepository) Update(log *model.GoalLog) error {
	query := `UPDATE goal_logs
	          SET log_date = $1, value = $2, note = $3
	          WHERE id = $4 AND goal_id = $5`

	result, err := r.db.Exec(query, log.LogDate, log.Value, log.Note, log.ID, log.GoalID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalLogNotFound
	}

	return nil
}

func (r *goalLogRepository) ByID(goalID, logID string) (*model.GoalLog, error) {
	log := &model.GoalLog{}
	query := `SELECT * FROM goal_logs WHERE id = $1 AND goal_id = $2`

	err := r.db.Get(log, query, logID, goalID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalLogNotFound
	}

	return log, err
}

func (r *goalLogRepository) ByGoalAndDate(goalID string, date time.Time) (*model.GoalLog, error) {
	log := &model.GoalLog{}
	query := `SELECT * FROM goal_logs WHERE goal_id = $1 AND log_date = $2`

	err := r.db.Get(log, query, goalID, date)
	if err == sql.ErrNoRows {
		return nil, ErrGoalLogNotFound
	}

	return log, err
}

// Latest returns the chronologically newest log for the goal, ties broken
// by id so edits to backdated logs never change which row wins.
func (r *goalLogRepository) Latest(goalID string) (*model.GoalLog, error) {
	log := &model.GoalLog{}
	query := `SELECT * FROM goal_logs WHERE goal_id = $1
	          ORDER BY log_date DESC, id DESC LIMIT 1`

	err := r.db.Get(log, query, goalID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalLogNotFound
	}

	return log, err
}

func (r *goalLogRepository) Recent(goalID string, limit int) ([]*model.GoalLog, error) {
	var logs []*model.GoalLog
	query := `SELECT * FROM goal_logs WHERE goal_id = $1
	          ORDER BY log_date DESC, id DESC LIMIT $2`

	err := r.db.Select(&logs, query, goalID, limit)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

// CountCompletedSince counts the goal's logs on or after from with value 1,
// the in-period occurrence count for frequency goals.
func (r *goalLogRepository) CountCompletedSince(goalID string, from time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM goal_logs WHERE goal_id = $1 AND log_date >= $2 AND value = 1`

	err := r.db.QueryRow(query, goalID, from).Scan(&count)
	return count, err
}
