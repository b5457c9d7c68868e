package repository

import (
	"project-showcase-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StarRepository handles database operations for project stars
type StarRepository struct {
	db *gorm.DB
}

// NewStarRepository creates a new star repository
func NewStarRepository(db *gorm.DB) *StarRepository {
	return &StarRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *StarRepository) WithTx(tx *gorm.DB) *StarRepository {
	return &StarRepository{db: tx}
}

// GetByProjectAndUser retrieves the star row for a (project, user) pair
func (r *StarRepository) GetByProjectAndUser(projectID, userID uuid.UUID) (*models.ProjectStar, error) {
	var star models.ProjectStar
	err := r.db.First(&star, "project_id = ? AND user_id = ?", projectID, userID).Error
	if err != nil {
		return nil, err
	}
	return &star, nil
}

// GetByProjectAndUserForUpdate retrieves the star row with a row lock.
// Must be called inside a transaction.
func (r *StarRepository) GetByProjectAndUserForUpdate(projectID, userID uuid.UUID) (*models.ProjectStar, error) {
	var star models.ProjectStar
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&star, "project_id = ? AND user_id = ?", projectID, userID).Error
	if err != nil {
		return nil, err
	}
	return &star, nil
}

// Create inserts a star row. The unique index on (project_id, user_id)
// rejects a concurrent duplicate.
func (r *StarRepository) Create(star *models.ProjectStar) error {
	return r.db.Create(star).Error
}

// Delete removes a star row
func (r *StarRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectStar{}, "id = ?", id).Error
}

// DeleteByProject removes all star rows for a project
func (r *StarRepository) DeleteByProject(projectID uuid.UUID) error {
	return r.db.Delete(&models.ProjectStar{}, "project_id = ?", projectID).Error
}

// Count returns the number of stars for a project
func (r *StarRepository) Count(projectID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectStar{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}
