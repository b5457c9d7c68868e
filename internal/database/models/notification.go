package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notification is created only as a side effect of another entity's state
// transition and is owned by its addressee. RelatedID is a weak reference,
// usually to a project.
type Notification struct {
	BaseModel
	UserID    uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Type      NotificationType `json:"type" gorm:"type:varchar(40);not null;index" validate:"required"`
	Title     string           `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Message   string           `json:"message" gorm:"type:text"`
	RelatedID *uuid.UUID       `json:"related_id,omitempty" gorm:"type:uuid;index"`
	Data      datatypes.JSON   `json:"data,omitempty" gorm:"type:jsonb"`
	IsRead    bool             `json:"is_read" gorm:"not null;default:false;index"`
	ReadAt    *time.Time       `json:"read_at,omitempty"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
