package models

import (
	"github.com/google/uuid"
)

// ProjectVote records a single user's vote on a project. The composite
// unique index guarantees at most one row per (project, user); the vote
// direction is mutually exclusive by virtue of living in one column.
type ProjectVote struct {
	BaseModel
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_votes_project_user" validate:"required"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_votes_project_user;index" validate:"required"`
	VoteType  VoteType  `json:"vote_type" gorm:"type:varchar(10);not null" validate:"required"`
}

// TableName returns the table name for ProjectVote
func (ProjectVote) TableName() string {
	return "project_votes"
}
