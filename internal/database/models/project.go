package models

import (
	"github.com/google/uuid"
)

// ProjectStatus represents the status of a showcased project
type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusArchived ProjectStatus = "archived"
)

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusArchived:
		return true
	}
	return false
}

// Project represents a student project published on the showcase portal
type Project struct {
	BaseModel
	OwnerID          uuid.UUID     `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title            string        `json:"title" gorm:"not null;size:200" validate:"required,min=3,max=200"`
	ShortDescription string        `json:"short_description" gorm:"not null;size:300" validate:"required,max=300"`
	Description      string        `json:"description" gorm:"type:text"`
	Branch           string        `json:"branch" gorm:"size:100;index"`
	ProjectType      string        `json:"project_type" gorm:"size:100;index"`
	GithubURL        string        `json:"github_url" gorm:"size:500" validate:"omitempty,url,max=500"`
	Status           ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`

	// Relationships
	Owner          User                   `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Votes          []ProjectVote          `json:"votes,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Stars          []ProjectStar          `json:"stars,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Collaborations []ProjectCollaboration `json:"collaborations,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Comments       []Comment              `json:"comments,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// IsActive reports whether the project accepts interactions
func (p *Project) IsActive() bool {
	return p.Status == ProjectStatusActive
}
