package repository

import (
	"project-showcase-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByRole(role models.UserRole) ([]models.User, error)
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetWithOwner(id uuid.UUID) (*models.Project, error)
	GetByOwnerID(ownerID uuid.UUID, limit, offset int) ([]models.Project, int64, error)
	List(filter ProjectFilter, limit, offset int) ([]models.Project, int64, error)
	Update(project *models.Project) error
	SetStatus(projectID uuid.UUID, status models.ProjectStatus) error
	Delete(id uuid.UUID) error
}

// VoteRepositoryInterface defines the interface for vote repository operations
type VoteRepositoryInterface interface {
	GetByProjectAndUser(projectID, userID uuid.UUID) (*models.ProjectVote, error)
	GetByProjectAndUserForUpdate(projectID, userID uuid.UUID) (*models.ProjectVote, error)
	Create(vote *models.ProjectVote) error
	UpdateType(id uuid.UUID, voteType models.VoteType) error
	Delete(id uuid.UUID) error
	DeleteByProject(projectID uuid.UUID) error
	CountByType(projectID uuid.UUID, voteType models.VoteType) (int64, error)
}

// StarRepositoryInterface defines the interface for star repository operations
type StarRepositoryInterface interface {
	GetByProjectAndUser(projectID, userID uuid.UUID) (*models.ProjectStar, error)
	GetByProjectAndUserForUpdate(projectID, userID uuid.UUID) (*models.ProjectStar, error)
	Create(star *models.ProjectStar) error
	Delete(id uuid.UUID) error
	DeleteByProject(projectID uuid.UUID) error
	Count(projectID uuid.UUID) (int64, error)
}

// CollaborationRepositoryInterface defines the interface for collaboration repository operations
type CollaborationRepositoryInterface interface {
	Create(collaboration *models.ProjectCollaboration) error
	GetByID(id uuid.UUID) (*models.ProjectCollaboration, error)
	GetWithProject(id uuid.UUID) (*models.ProjectCollaboration, error)
	GetByProjectAndUser(projectID, userID uuid.UUID) (*models.ProjectCollaboration, error)
	SetStatus(id uuid.UUID, status models.CollaborationStatus) error
	Delete(id uuid.UUID) error
	DeleteByProject(projectID uuid.UUID) error
	ListPendingForOwner(ownerID uuid.UUID, limit, offset int) ([]models.ProjectCollaboration, int64, error)
	ListSentByUser(userID uuid.UUID, limit, offset int) ([]models.ProjectCollaboration, int64, error)
	ListActiveForUser(userID uuid.UUID, limit, offset int) ([]models.ProjectCollaboration, int64, error)
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByID(id uuid.UUID) (*models.Notification, error)
	ListByUser(userID uuid.UUID, limit, offset int) ([]models.Notification, int64, error)
	ListAll(limit, offset int) ([]models.Notification, int64, error)
	CountUnread(userID uuid.UUID) (int64, error)
	MarkRead(id uuid.UUID) error
	MarkAllRead(userID uuid.UUID) error
	Delete(id uuid.UUID) error
	DeleteByRelatedID(relatedID uuid.UUID) error
	BroadcastToRoles(roles []models.UserRole, notificationType models.NotificationType, title, message string, relatedID *uuid.UUID) error
}

// CommentRepositoryInterface defines the interface for comment repository operations
type CommentRepositoryInterface interface {
	Create(comment *models.Comment) error
	GetByID(id uuid.UUID) (*models.Comment, error)
	ListByProject(projectID uuid.UUID, limit, offset int) ([]models.Comment, int64, error)
	Delete(id uuid.UUID) error
	DeleteByProject(projectID uuid.UUID) error
	CountByProject(projectID uuid.UUID) (int64, error)
}
