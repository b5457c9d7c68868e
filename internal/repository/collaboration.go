package repository

import (
	"time"

	"project-showcase-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CollaborationRepository handles database operations for collaboration requests
type CollaborationRepository struct {
	db *gorm.DB
}

// NewCollaborationRepository creates a new collaboration repository
func NewCollaborationRepository(db *gorm.DB) *CollaborationRepository {
	return &CollaborationRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *CollaborationRepository) WithTx(tx *gorm.DB) *CollaborationRepository {
	return &CollaborationRepository{db: tx}
}

// Create creates a new collaboration request
func (r *CollaborationRepository) Create(collaboration *models.ProjectCollaboration) error {
	return r.db.Create(collaboration).Error
}

// GetByID retrieves a collaboration request by ID
func (r *CollaborationRepository) GetByID(id uuid.UUID) (*models.ProjectCollaboration, error) {
	var collaboration models.ProjectCollaboration
	err := r.db.First(&collaboration, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &collaboration, nil
}

// GetWithProject retrieves a collaboration request with project details
func (r *CollaborationRepository) GetWithProject(id uuid.UUID) (*models.ProjectCollaboration, error) {
	var collaboration models.ProjectCollaboration
	err := r.db.Preload("Project").First(&collaboration, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &collaboration, nil
}

// GetByProjectAndUser retrieves the collaboration row for a (project, user)
// pair regardless of status
func (r *CollaborationRepository) GetByProjectAndUser(projectID, userID uuid.UUID) (*models.ProjectCollaboration, error) {
	var collaboration models.ProjectCollaboration
	err := r.db.First(&collaboration, "project_id = ? AND user_id = ?", projectID, userID).Error
	if err != nil {
		return nil, err
	}
	return &collaboration, nil
}

// SetStatus moves a request into a terminal state and stamps responded_at
func (r *CollaborationRepository) SetStatus(id uuid.UUID, status models.CollaborationStatus) error {
	now := time.Now()
	return r.db.Model(&models.ProjectCollaboration{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":       status,
		"responded_at": &now,
	}).Error
}

// Delete removes a collaboration request row
func (r *CollaborationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectCollaboration{}, "id = ?", id).Error
}

// DeleteByProject removes all collaboration rows for a project
func (r *CollaborationRepository) DeleteByProject(projectID uuid.UUID) error {
	return r.db.Delete(&models.ProjectCollaboration{}, "project_id = ?", projectID).Error
}

// ListPendingForOwner retrieves pending requests on projects owned by a user
func (r *CollaborationRepository) ListPendingForOwner(ownerID uuid.UUID, limit, offset int) ([]models.ProjectCollaboration, int64, error) {
	var collaborations []models.ProjectCollaboration
	var total int64

	query := r.db.Model(&models.ProjectCollaboration{}).
		Joins("JOIN projects ON projects.id = project_collaborations.project_id").
		Where("projects.owner_id = ? AND project_collaborations.status = ?", ownerID, models.CollaborationStatusPending)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Project").Preload("User").
		Order("project_collaborations.requested_at DESC").
		Limit(limit).Offset(offset).Find(&collaborations).Error
	if err != nil {
		return nil, 0, err
	}

	return collaborations, total, nil
}

// ListSentByUser retrieves requests a user has made, newest first
func (r *CollaborationRepository) ListSentByUser(userID uuid.UUID, limit, offset int) ([]models.ProjectCollaboration, int64, error) {
	var collaborations []models.ProjectCollaboration
	var total int64

	query := r.db.Model(&models.ProjectCollaboration{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Project").
		Order("requested_at DESC").
		Limit(limit).Offset(offset).Find(&collaborations).Error
	if err != nil {
		return nil, 0, err
	}

	return collaborations, total, nil
}

// ListActiveForUser retrieves accepted collaborations where the user is
// either the collaborator or the project owner
func (r *CollaborationRepository) ListActiveForUser(userID uuid.UUID, limit, offset int) ([]models.ProjectCollaboration, int64, error) {
	var collaborations []models.ProjectCollaboration
	var total int64

	query := r.db.Model(&models.ProjectCollaboration{}).
		Joins("JOIN projects ON projects.id = project_collaborations.project_id").
		Where("project_collaborations.status = ?", models.CollaborationStatusAccepted).
		Where("project_collaborations.user_id = ? OR projects.owner_id = ?", userID, userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Project").Preload("User").
		Order("project_collaborations.responded_at DESC").
		Limit(limit).Offset(offset).Find(&collaborations).Error
	if err != nil {
		return nil, 0, err
	}

	return collaborations, total, nil
}
