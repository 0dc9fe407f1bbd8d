package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lifetrackhq/lifetrack/internal/model"
)

var (
	ErrWorkLogNotFound = errors.New("work log not found")
)

type WorkLogRepository interface {
	Insert(log *model.WorkLog) error
	Update(log *model.WorkLog) error
	ByDate(date time.Time) (*model.WorkLog, error)
	Range(from, to time.Time) ([]*model.WorkLog, error)
}

type workLogRepository struct {
	db *sqlx.DB
}

func NewWorkLogRepository(db *sqlx.DB) WorkLogRepository {
	return &workLogRepository{db: db}
}

func (r *workLogRepository) Insert(log *model.WorkLog) error {
	query := `INSERT INTO work_logs (id, log_date, hours, note, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query, log.ID, log.LogDate, log.Hours, log.Note, log.CreatedAt)
	return err
}

func (r *workLogRepository) Update(log *model.WorkLog) error {
	query := `UPDATE work_logs SET hours = $1, note = $2 WHERE id = $3`

	result, err := r.db.Exec(query, log.Hours, log.Note, log.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrWorkLogNotFound
	}

	return nil
}

func (r *workLogRepository) ByDate(date time.Time) (*model.WorkLog, error) {
	log := &model.WorkLog{}
	query := `SELECT * FROM work_logs WHERE log_date = $1`

	err := r.db.Get(log, query, date)
	if err == sql.ErrNoRows {
		return nil, ErrWorkLogNotFound
	}

	return log, err
}

func (r *workLogRepository) Range(from, to time.Time) ([]*model.WorkLog, error) {
	var logs []*model.WorkLog
	query := `SELECT * FROM work_logs
	          WHERE log_date >= $1 AND log_date < $2
	          ORDER BY log_date ASC`

	err := r.db.Select(&logs, query, from, to)
	if err != nil {
		return nil, err
	}

	return logs, nil
}
