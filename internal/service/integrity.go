package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack/internal/model"
	"github.com/lifetrackhq/lifetrack/internal/repository"
)

var (
	ErrScoreOutOfRange = errors.New("integrity score must be between 0 and 10")
)

type IntegrityService struct {
	repo repository.IntegrityLogRepository
}

func NewIntegrityService(repo repository.IntegrityLogRepository) *IntegrityService {
	return &IntegrityService{repo: repo}
}

// Upsert records the day's integrity score, overwriting an existing entry
// for the same date. The note only overwrites when non-empty, matching the
// goal log merge rule.
func (s *IntegrityService) Upsert(date time.Time, score int, note string) (*model.IntegrityLog, error) {
	if score < 0 || score > 10 {
		return nil, ErrScoreOutOfRange
	}

	day := dateOnly(date)
	log, err := s.repo.ByDate(day)
	if errors.Is(err, repository.ErrIntegrityLogNotFound) {
		log = &model.IntegrityLog{
			ID:        uuid.New().String(),
			LogDate:   day,
			Score:     score,
			Note:      note,
			CreatedAt: time.Now(),
		}
		err = s.repo.Insert(log)
		if err != nil {
			return nil, fmt.Errorf("failed to insert integrity log: %w", err)
		}
		return log, nil
	}
	if err != nil {
		return nil, err
	}

	log.Score = score
	if note != "" {
		log.Note = note
	}

	err = s.repo.Update(log)
	if err != nil {
		return nil, err
	}

	return log, nil
}

func (s *IntegrityService) Range(from, to time.Time) ([]*model.IntegrityLog, error) {
	return s.repo.Range(dateOnly(from), dateOnly(to))
}
