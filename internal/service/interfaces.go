package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

import (
	"context"

	"project-showcase-backend/internal/auth"
	"project-showcase-backend/internal/database/models"
	"project-showcase-backend/internal/repository"

	"github.com/google/uuid"
)

// Interactions is the vote/star/stats surface consumed by handlers
type Interactions interface {
	Vote(actor auth.Actor, projectID uuid.UUID, voteType models.VoteType) (*ToggleResult, error)
	Star(actor auth.Actor, projectID uuid.UUID) (*ToggleResult, error)
	Unstar(actor auth.Actor, projectID uuid.UUID) (*ToggleResult, error)
	GetStats(actor auth.Actor, projectID uuid.UUID) (*ProjectStats, error)
}

// Collaborations is the collaboration-request lifecycle surface
type Collaborations interface {
	Request(actor auth.Actor, projectID uuid.UUID) (*CollaborationResponse, error)
	Invite(actor auth.Actor, projectID uuid.UUID, username string) (*CollaborationResponse, error)
	Respond(actor auth.Actor, collaborationID uuid.UUID, decision CollaborationDecision) (*CollaborationResponse, error)
	AdminRespond(actor auth.Actor, collaborationID uuid.UUID, decision CollaborationDecision) (*CollaborationResponse, error)
	Cancel(actor auth.Actor, collaborationID uuid.UUID) error
	AdminRemove(actor auth.Actor, collaborationID uuid.UUID) error
	ListRequests(actor auth.Actor, page, pageSize int) (*CollaborationListResponse, error)
	ListSent(actor auth.Actor, page, pageSize int) (*CollaborationListResponse, error)
	ListActive(actor auth.Actor, page, pageSize int) (*CollaborationListResponse, error)
}

// Notifications is the addressee-scoped notification surface
type Notifications interface {
	List(actor auth.Actor, page, pageSize int) (*NotificationListResponse, error)
	ListAll(actor auth.Actor, page, pageSize int) (*NotificationListResponse, error)
	UnreadCount(actor auth.Actor) (int64, error)
	MarkRead(actor auth.Actor, id uuid.UUID) error
	MarkAllRead(actor auth.Actor) error
	Delete(actor auth.Actor, id uuid.UUID) error
}

// Projects is the project lifecycle surface
type Projects interface {
	Create(actor auth.Actor, req *CreateProjectRequest) (*ProjectResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ProjectResponse, error)
	List(filter repository.ProjectFilter, page, pageSize int) (*ProjectListResponse, error)
	ListMine(actor auth.Actor, page, pageSize int) (*ProjectListResponse, error)
	Update(actor auth.Actor, id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error)
	Delete(actor auth.Actor, id uuid.UUID) error
	Archive(actor auth.Actor, id uuid.UUID) error
	Activate(actor auth.Actor, id uuid.UUID) error
}

// Comments is the project comment surface
type Comments interface {
	Create(actor auth.Actor, projectID uuid.UUID, req *CreateCommentRequest) (*CommentResponse, error)
	List(projectID uuid.UUID, page, pageSize int) (*CommentListResponse, error)
	Delete(actor auth.Actor, id uuid.UUID) error
}
