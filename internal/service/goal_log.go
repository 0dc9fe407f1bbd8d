package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack/internal/model"
	"github.com/lifetrackhq/lifetrack/internal/repository"
)

// recentLogLimit caps how many logs feed the statistics calculator.
const recentLogLimit = 30

// GoalLogService is the progress log engine: it upserts dated log entries
// and keeps the owning goal's cached counter in sync. Writes for the same
// goal are serialized with a per-goal mutex so the period re-scan for
// frequency goals never races with a concurrent write.
type GoalLogService struct {
	goalRepo repository.GoalRepository
	logRepo  repository.GoalLogRepository

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewGoalLogService(goalRepo repository.GoalRepository, logRepo repository.GoalLogRepository) *GoalLogService {
	return &GoalLogService{
		goalRepo: goalRepo,
		logRepo:  logRepo,
		locks:    make(map[string]*sync.Mutex),
	}
}

func (s *GoalLogService) goalLock(goalID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[goalID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[goalID] = lock
	}
	return lock
}

type LogProgressParams struct {
	Value   int
	Note    string
	LogDate *time.Time
}

// LogProgress upserts the log row for (goal, date) and recomputes the
// goal's cached value. The date defaults to asOf's date. On an existing
// row the value always overwrites but the note only overwrites when the
// new note is non-empty, so a value-only update never erases an earlier
// note.
func (s *GoalLogService) LogProgress(goalID string, p LogProgressParams, asOf time.Time) (*model.GoalLog, *model.Goal, error) {
	lock := s.goalLock(goalID)
	lock.Lock()
	defer lock.Unlock()

	goal, err := s.goalRepo.ByID(goalID)
	if err != nil {
		return nil, nil, err
	}

	date := dateOnly(asOf)
	if p.LogDate != nil {
		date = dateOnly(*p.LogDate)
	}

	log, err := s.logRepo.ByGoalAndDate(goalID, date)
	switch {
	case errors.Is(err, repository.ErrGoalLogNotFound):
		log = &model.GoalLog{
			ID:        uuid.New().String(),
			GoalID:    goalID,
			LogDate:   date,
			Value:     p.Value,
			Note:      p.Note,
			CreatedAt: time.Now(),
		}
		err = s.logRepo.Insert(log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to insert goal log: %w", err)
		}
	case err != nil:
		return nil, nil, err
	default:
		log.Value = p.Value
		if p.Note != "" {
			log.Note = p.Note
		}
		err = s.logRepo.Update(log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to update goal log: %w", err)
		}
	}

	err = s.recomputeCachedValue(goal, asOf)
	if err != nil {
		return nil, nil, err
	}

	err = s.goalRepo.Update(goal)
	if err != nil {
		return nil, nil, err
	}

	return log, goal, nil
}

type EditLogParams struct {
	Value   *int
	Note    *string
	LogDate *time.Time
}

// EditLog applies the supplied fields directly to an existing log row.
// Unlike LogProgress this is a plain edit, not a merge: an empty note
// supplied here does clear the stored note. The goal's cached value is
// recomputed afterward.
func (s *GoalLogService) EditLog(goalID, logID string, p EditLogParams, asOf time.Time) (*model.GoalLog, *model.Goal, error) {
	lock := s.goalLock(goalID)
	lock.Lock()
	defer lock.Unlock()

	goal, err := s.goalRepo.ByID(goalID)
	if err != nil {
		return nil, nil, err
	}

	log, err := s.logRepo.ByID(goalID, logID)
	if err != nil {
		return nil, nil, err
	}

	if p.Value != nil {
		log.Value = *p.Value
	}
	if p.Note != nil {
		log.Note = *p.Note
	}
	if p.LogDate != nil {
		log.LogDate = dateOnly(*p.LogDate)
	}

	err = s.logRepo.Update(log)
	if err != nil {
		return nil, nil, err
	}

	err = s.recomputeCachedValue(goal, asOf)
	if err != nil {
		return nil, nil, err
	}

	err = s.goalRepo.Update(goal)
	if err != nil {
		return nil, nil, err
	}

	return log, goal, nil
}

// Recent returns up to recentLogLimit logs for the goal, newest first.
func (s *GoalLogService) Recent(goalID string) ([]*model.GoalLog, error) {
	_, err := s.goalRepo.ByID(goalID)
	if err != nil {
		return nil, err
	}

	return s.logRepo.Recent(goalID, recentLogLimit)
}

// recomputeCachedValue re-derives the goal's cached counter from the log
// ledger. Reading and numeric goals track the chronologically latest log's
// value (log date desc, id desc), so editing a backdated log can never
// leave a stale counter. Frequency goals re-scan the current period and
// count value=1 occurrences; a full re-scan rather than an increment keeps
// the counter correct when an in-period log is overwritten.
func (s *GoalLogService) recomputeCachedValue(goal *model.Goal, asOf time.Time) error {
	switch goal.Type {
	case model.GoalTypeFrequency:
		count, err := s.logRepo.CountCompletedSince(goal.ID, periodStart(goal.FrequencyPeriod, asOf))
		if err != nil {
			return err
		}
		goal.CurrentValue = count

	case model.GoalTypeReading:
		latest, err := s.logRepo.Latest(goal.ID)
		if errors.Is(err, repository.ErrGoalLogNotFound) {
			goal.CurrentPage = 0
			return nil
		}
		if err != nil {
			return err
		}
		goal.CurrentPage = latest.Value

	default: // numeric
		latest, err := s.logRepo.Latest(goal.ID)
		if errors.Is(err, repository.ErrGoalLogNotFound) {
			goal.CurrentValue = 0
			return nil
		}
		if err != nil {
			return err
		}
		goal.CurrentValue = latest.Value
	}

	return nil
}
