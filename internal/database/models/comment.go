package models

import (
	"github.com/google/uuid"
)

// Comment is a user remark on a project. Only creation, listing, deletion
// and counting are handled here; the project cascade delete removes them.
type Comment struct {
	BaseModel
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Body      string    `json:"body" gorm:"type:text;not null" validate:"required,min=1,max=2000"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
