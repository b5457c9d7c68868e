package repository

import (
	"project-showcase-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VoteRepository handles database operations for project votes
type VoteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new vote repository
func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *VoteRepository) WithTx(tx *gorm.DB) *VoteRepository {
	return &VoteRepository{db: tx}
}

// GetByProjectAndUser retrieves the vote row for a (project, user) pair
func (r *VoteRepository) GetByProjectAndUser(projectID, userID uuid.UUID) (*models.ProjectVote, error) {
	var vote models.ProjectVote
	err := r.db.First(&vote, "project_id = ? AND user_id = ?", projectID, userID).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

// GetByProjectAndUserForUpdate retrieves the vote row with a row lock so the
// toggle's check-then-act sequence is serialized against concurrent requests.
// Must be called inside a transaction.
func (r *VoteRepository) GetByProjectAndUserForUpdate(projectID, userID uuid.UUID) (*models.ProjectVote, error) {
	var vote models.ProjectVote
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&vote, "project_id = ? AND user_id = ?", projectID, userID).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

// Create inserts a vote row. The unique index on (project_id, user_id)
// rejects a concurrent duplicate first-vote.
func (r *VoteRepository) Create(vote *models.ProjectVote) error {
	return r.db.Create(vote).Error
}

// UpdateType switches an existing vote to the other direction
func (r *VoteRepository) UpdateType(id uuid.UUID, voteType models.VoteType) error {
	return r.db.Model(&models.ProjectVote{}).Where("id = ?", id).Update("vote_type", voteType).Error
}

// Delete removes a vote row (toggle-off)
func (r *VoteRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectVote{}, "id = ?", id).Error
}

// DeleteByProject removes all vote rows for a project
func (r *VoteRepository) DeleteByProject(projectID uuid.UUID) error {
	return r.db.Delete(&models.ProjectVote{}, "project_id = ?", projectID).Error
}

// CountByType returns the number of votes of one direction for a project
func (r *VoteRepository) CountByType(projectID uuid.UUID, voteType models.VoteType) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectVote{}).
		Where("project_id = ? AND vote_type = ?", projectID, voteType).
		Count(&count).Error
	return count, err
}
