package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack/internal/model"
	"github.com/lifetrackhq/lifetrack/internal/repository"
)

type GoalService struct {
	repo         repository.GoalRepository
	relationRepo repository.GoalRelationRepository
}

func NewGoalService(repo repository.GoalRepository, relationRepo repository.GoalRelationRepository) *GoalService {
	return &GoalService{
		repo:         repo,
		relationRepo: relationRepo,
	}
}

type CreateGoalParams struct {
	Title           string
	Type            string
	TargetValue     int
	Unit            string
	TotalPages      int
	FrequencyPeriod string
	TargetDate      *time.Time
	ParentID        string
}

// Create persists a new active goal. Type-specific fields are only kept for
// the matching type; a frequency goal without a period defaults to weekly.
// When ParentID is set the parent must exist and a relation edge is created,
// marking the new goal as its sub-goal.
func (s *GoalService) Create(p CreateGoalParams) (*model.Goal, error) {
	if p.ParentID != "" {
		_, err := s.repo.ByID(p.ParentID)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	goal := &model.Goal{
		ID:          uuid.New().String(),
		Title:       p.Title,
		Type:        p.Type,
		TargetValue: p.TargetValue,
		Unit:        p.Unit,
		StartDate:   dateOnly(now),
		TargetDate:  p.TargetDate,
		IsActive:    true,
		CreatedAt:   now,
	}

	switch p.Type {
	case model.GoalTypeReading:
		goal.TotalPages = p.TotalPages
	case model.GoalTypeFrequency:
		goal.FrequencyPeriod = p.FrequencyPeriod
		if goal.FrequencyPeriod == "" {
			goal.FrequencyPeriod = model.PeriodWeekly
		}
	}

	err := s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	if p.ParentID != "" {
		rel := &model.GoalRelation{
			ID:           uuid.New().String(),
			ParentGoalID: p.ParentID,
			ChildGoalID:  goal.ID,
			CreatedAt:    now,
		}
		err = s.relationRepo.Create(rel)
		if err != nil {
			return nil, fmt.Errorf("failed to create goal relation: %w", err)
		}
	}

	return goal, nil
}

func (s *GoalService) ByID(goalID string) (*model.Goal, error) {
	return s.repo.ByID(goalID)
}

type UpdateGoalParams struct {
	Title           *string
	TargetValue     *int
	Unit            *string
	CurrentValue    *int
	CurrentPage     *int
	TotalPages      *int
	FrequencyPeriod *string
	TargetDate      *time.Time
}

// Update applies the supplied fields only. The goal's type is immutable:
// changing it would invalidate the meaning of every accumulated log, so it
// is not an accepted field here. CurrentValue/CurrentPage are settable as
// explicit corrections; normal updates happen through the log engine.
func (s *GoalService) Update(goalID string, p UpdateGoalParams) (*model.Goal, error) {
	goal, err := s.repo.ByID(goalID)
	if err != nil {
		return nil, err
	}

	if p.Title != nil {
		goal.Title = *p.Title
	}
	if p.TargetValue != nil {
		goal.TargetValue = *p.TargetValue
	}
	if p.Unit != nil {
		goal.Unit = *p.Unit
	}
	if p.CurrentValue != nil {
		goal.CurrentValue = *p.CurrentValue
	}
	if p.CurrentPage != nil {
		goal.CurrentPage = *p.CurrentPage
	}
	if p.TotalPages != nil {
		goal.TotalPages = *p.TotalPages
	}
	if p.FrequencyPeriod != nil {
		goal.FrequencyPeriod = *p.FrequencyPeriod
	}
	if p.TargetDate != nil {
		goal.TargetDate = p.TargetDate
	}

	err = s.repo.Update(goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// ActiveTopLevel returns active goals without a parent, newest first.
func (s *GoalService) ActiveTopLevel() ([]*model.Goal, error) {
	return s.repo.ActiveTopLevel()
}

// SubGoals returns the active children of parentID, oldest first.
func (s *GoalService) SubGoals(parentID string) ([]*model.Goal, error) {
	return s.repo.SubGoals(parentID)
}

// SoftDelete clears the goal's active flag. The goal and its logs stay in
// the store and remain readable by id.
func (s *GoalService) SoftDelete(goalID string) error {
	goal, err := s.repo.ByID(goalID)
	if err != nil {
		return err
	}

	goal.IsActive = false
	return s.repo.Update(goal)
}
