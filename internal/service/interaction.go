package service

import (
	"errors"
	"fmt"

	"project-showcase-backend/internal/auth"
	"project-showcase-backend/internal/database/models"
	apperrors "project-showcase-backend/internal/errors"
	"project-showcase-backend/internal/logger"
	"project-showcase-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InteractionService handles vote and star toggles and the project stats
// aggregate
type InteractionService struct {
	db          *gorm.DB
	voteRepo    *repository.VoteRepository
	starRepo    *repository.StarRepository
	commentRepo *repository.CommentRepository
	projectRepo *repository.ProjectRepository
	log         *logger.Logger
}

// NewInteractionService creates a new interaction service
func NewInteractionService(db *gorm.DB, voteRepo *repository.VoteRepository, starRepo *repository.StarRepository, commentRepo *repository.CommentRepository, projectRepo *repository.ProjectRepository) *InteractionService {
	return &InteractionService{
		db:          db,
		voteRepo:    voteRepo,
		starRepo:    starRepo,
		commentRepo: commentRepo,
		projectRepo: projectRepo,
		log:         logger.New(),
	}
}

// ToggleResult is the outcome of a vote or star toggle
type ToggleResult struct {
	Count    int64 `json:"count"`
	IsActive bool  `json:"is_active"`
}

// ProjectStats is the interaction aggregate for a project as seen by a user
type ProjectStats struct {
	Upvotes       int64 `json:"upvotes"`
	Downvotes     int64 `json:"downvotes"`
	Stars         int64 `json:"stars"`
	Comments      int64 `json:"comments"`
	UserUpvoted   bool  `json:"user_upvoted"`
	UserDownvoted bool  `json:"user_downvoted"`
	UserStarred   bool  `json:"user_starred"`
}

// Vote applies the toggle semantics for a single vote direction:
// no row → insert (active), same direction → remove (inactive), opposite
// direction → switch (active). The whole read-modify-write runs in one
// transaction with a row lock so concurrent requests from the same user
// serialize; the unique index on (project_id, user_id) backstops the
// first-vote race.
func (s *InteractionService) Vote(actor auth.Actor, projectID uuid.UUID, voteType models.VoteType) (*ToggleResult, error) {
	if !voteType.IsValid() {
		return nil, apperrors.ErrInvalidVoteType
	}

	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if !project.IsActive() {
		return nil, apperrors.ErrProjectNotActive
	}

	var active bool
	err = s.db.Transaction(func(tx *gorm.DB) error {
		votes := s.voteRepo.WithTx(tx)

		existing, err := votes.GetByProjectAndUserForUpdate(projectID, actor.UserID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to load existing vote: %w", err)
			}
			if err := votes.Create(&models.ProjectVote{
				ProjectID: projectID,
				UserID:    actor.UserID,
				VoteType:  voteType,
			}); err != nil {
				return fmt.Errorf("failed to insert vote: %w", err)
			}
			active = true
			return nil
		}

		if existing.VoteType == voteType {
			// Toggle off
			if err := votes.Delete(existing.ID); err != nil {
				return fmt.Errorf("failed to remove vote: %w", err)
			}
			active = false
			return nil
		}

		// Switch direction
		if err := votes.UpdateType(existing.ID, voteType); err != nil {
			return fmt.Errorf("failed to switch vote: %w", err)
		}
		active = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	count, err := s.voteRepo.CountByType(projectID, voteType)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}

	return &ToggleResult{Count: count, IsActive: active}, nil
}

// Star adds a star for (project, user). Idempotent: starring an already
// starred project leaves the row in place and reports active.
func (s *InteractionService) Star(actor auth.Actor, projectID uuid.UUID) (*ToggleResult, error) {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if !project.IsActive() {
		return nil, apperrors.ErrProjectNotActive
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		stars := s.starRepo.WithTx(tx)

		_, err := stars.GetByProjectAndUserForUpdate(projectID, actor.UserID)
		if err == nil {
			return nil // already starred
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to load existing star: %w", err)
		}

		if err := stars.Create(&models.ProjectStar{
			ProjectID: projectID,
			UserID:    actor.UserID,
		}); err != nil {
			return fmt.Errorf("failed to insert star: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	count, err := s.starRepo.Count(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to count stars: %w", err)
	}

	return &ToggleResult{Count: count, IsActive: true}, nil
}

// Unstar removes the star for (project, user). A no-op when no star exists.
func (s *InteractionService) Unstar(actor auth.Actor, projectID uuid.UUID) (*ToggleResult, error) {
	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		stars := s.starRepo.WithTx(tx)

		existing, err := stars.GetByProjectAndUserForUpdate(projectID, actor.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // nothing to remove
			}
			return fmt.Errorf("failed to load existing star: %w", err)
		}
		if err := stars.Delete(existing.ID); err != nil {
			return fmt.Errorf("failed to remove star: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	count, err := s.starRepo.Count(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to count stars: %w", err)
	}

	return &ToggleResult{Count: count, IsActive: false}, nil
}

// GetStats returns the interaction aggregate for a project. Individual read
// failures are logged and rendered as zero so the page stays up; the log
// entry is what distinguishes "query failed" from a legitimate empty result.
func (s *InteractionService) GetStats(actor auth.Actor, projectID uuid.UUID) (*ProjectStats, error) {
	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	stats := &ProjectStats{}
	log := s.log.WithField("project_id", projectID)

	if count, err := s.voteRepo.CountByType(projectID, models.VoteTypeUpvote); err != nil {
		log.WithError(err).Error("stats: upvote count query failed, rendering zero")
	} else {
		stats.Upvotes = count
	}

	if count, err := s.voteRepo.CountByType(projectID, models.VoteTypeDownvote); err != nil {
		log.WithError(err).Error("stats: downvote count query failed, rendering zero")
	} else {
		stats.Downvotes = count
	}

	if count, err := s.starRepo.Count(projectID); err != nil {
		log.WithError(err).Error("stats: star count query failed, rendering zero")
	} else {
		stats.Stars = count
	}

	if count, err := s.commentRepo.CountByProject(projectID); err != nil {
		log.WithError(err).Error("stats: comment count query failed, rendering zero")
	} else {
		stats.Comments = count
	}

	if vote, err := s.voteRepo.GetByProjectAndUser(projectID, actor.UserID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.WithError(err).Error("stats: user vote query failed, rendering false")
		}
	} else {
		stats.UserUpvoted = vote.VoteType == models.VoteTypeUpvote
		stats.UserDownvoted = vote.VoteType == models.VoteTypeDownvote
	}

	if _, err := s.starRepo.GetByProjectAndUser(projectID, actor.UserID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.WithError(err).Error("stats: user star query failed, rendering false")
		}
	} else {
		stats.UserStarred = true
	}

	return stats, nil
}
