package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack/internal/model"
	"github.com/lifetrackhq/lifetrack/internal/repository"
)

type WorkLogService struct {
	repo repository.WorkLogRepository
}

func NewWorkLogService(repo repository.WorkLogRepository) *WorkLogService {
	return &WorkLogService{repo: repo}
}

// Upsert records hours worked for a day, overwriting an existing entry.
func (s *WorkLogService) Upsert(date time.Time, hours float64, note string) (*model.WorkLog, error) {
	day := dateOnly(date)
	log, err := s.repo.ByDate(day)
	if errors.Is(err, repository.ErrWorkLogNotFound) {
		log = &model.WorkLog{
			ID:        uuid.New().String(),
			LogDate:   day,
			Hours:     hours,
			Note:      note,
			CreatedAt: time.Now(),
		}
		err = s.repo.Insert(log)
		if err != nil {
			return nil, fmt.Errorf("failed to insert work log: %w", err)
		}
		return log, nil
	}
	if err != nil {
		return nil, err
	}

	log.Hours = hours
	if note != "" {
		log.Note = note
	}

	err = s.repo.Update(log)
	if err != nil {
		return nil, err
	}

	return log, nil
}

func (s *WorkLogService) Range(from, to time.Time) ([]*model.WorkLog, error) {
	return s.repo.Range(dateOnly(from), dateOnly(to))
}
