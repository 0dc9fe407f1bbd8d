package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/lifetrackhq/lifetrack/internal/model"
)

type GoalRelationRepository interface {
	Create(rel *model.GoalRelation) error
	HasParent(childID string) (bool, error)
}

type goalRelationRepository struct {
	db *sqlx.DB
}

func NewGoalRelationRepository(db *sqlx.DB) GoalRelationRepository {
	return &goalRelationRepository{db: db}
}

func (r *goalRelationRepository) Create(rel *model.GoalRelation) error {
	query := `INSERT INTO goal_relations (id, parent_goal_id, child_goal_id, created_at)
	          VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query, rel.ID, rel.ParentGoalID, rel.ChildGoalID, rel.CreatedAt)
	return err
}

func (r *goalRelationRepository) HasParent(childID string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM goal_relations WHERE child_goal_id = $1`

	err := r.db.QueryRow(query, childID).Scan(&count)
	return count > 0, err
}
