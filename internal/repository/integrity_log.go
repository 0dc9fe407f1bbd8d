package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lifetrackhq/lifetrack/internal/model"
)

var (
	ErrIntegrityLogNotFound = errors.New("integrity log not found")
)

type IntegrityLogRepository interface {
	Insert(log *model.IntegrityLog) error
	Update(log *model.IntegrityLog) error
	ByDate(date time.Time) (*model.IntegrityLog, error)
	Range(from, to time.Time) ([]*model.IntegrityLog, error)
}

type integrityLogRepository struct {
	db *sqlx.DB
}

func NewIntegrityLogRepository(db *sqlx.DB) IntegrityLogRepository {
	return &integrityLogRepository{db: db}
}

func (r *integrityLogRepository) Insert(log *model.IntegrityLog) error {
	query := `INSERT INTO integrity_logs (id, log_date, score, note, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query, log.ID, log.LogDate, log.Score, log.Note, log.CreatedAt)
	return err
}

func (r *integrityLogRepository) Update(log *model.IntegrityLog) error {
	query := `UPDATE integrity_logs SET score = $1, note = $2 WHERE id = $3`

	result, err := r.db.Exec(query, log.Score, log.Note, log.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrIntegrityLogNotFound
	}

	return nil
}

func (r *integrityLogRepository) ByDate(date time.Time) (*model.IntegrityLog, error) {
	log := &model.IntegrityLog{}
	query := `SELECT * FROM integrity_logs WHERE log_date = $1`

	err := r.db.Get(log, query, date)
	if err == sql.ErrNoRows {
		return nil, ErrIntegrityLogNotFound
	}

	return log, err
}

// Range returns logs with from <= log_date < to, oldest first.
func (r *integrityLogRepository) Range(from, to time.Time) ([]*model.IntegrityLog, error) {
	var logs []*model.IntegrityLog
	query := `SELECT * FROM integrity_logs
	          WHERE log_date >= $1 AND log_date < $2
	          ORDER BY log_date ASC`

	err := r.db.Select(&logs, query, from, to)
	if err != nil {
		return nil, err
	}

	return logs, nil
}
