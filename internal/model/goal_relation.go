package model

import (
	"time"
)

// GoalRelation marks the child goal as a sub-goal of the parent. Edges are
// only created at goal-creation time and a child has at most one parent.
type GoalRelation struct {
	ID           string    `db:"id" json:"id"`
	ParentGoalID string    `db:"parent_goal_id" json:"parentGoalId"`
	ChildGoalID  string    `db:"child_goal_id" json:"childGoalId"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
