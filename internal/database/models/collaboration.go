package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectCollaboration tracks a user's request to join a project.
// Lifecycle: created pending, responded exactly once (accepted/rejected,
// stamping RespondedAt), or deleted while pending by the requester.
// Invariant: RespondedAt is nil iff Status is pending.
type ProjectCollaboration struct {
	BaseModel
	ProjectID   uuid.UUID           `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_collaborations_project_user" validate:"required"`
	UserID      uuid.UUID           `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_collaborations_project_user;index" validate:"required"`
	Status      CollaborationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	RequestedAt time.Time           `json:"requested_at" gorm:"not null"`
	RespondedAt *time.Time          `json:"responded_at,omitempty"`

	// Relationships
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for ProjectCollaboration
func (ProjectCollaboration) TableName() string {
	return "project_collaborations"
}

// IsPending reports whether the request is still awaiting a response
func (c *ProjectCollaboration) IsPending() bool {
	return c.Status == CollaborationStatusPending
}
