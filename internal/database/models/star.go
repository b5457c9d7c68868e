package models

import (
	"github.com/google/uuid"
)

// ProjectStar marks a project as starred by a user. Presence of the row is
// the whole state; the composite unique index keeps it to one per pair.
type ProjectStar struct {
	BaseModel
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_stars_project_user" validate:"required"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_stars_project_user;index" validate:"required"`
}

// TableName returns the table name for ProjectStar
func (ProjectStar) TableName() string {
	return "project_stars"
}
