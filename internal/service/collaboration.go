package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"project-showcase-backend/internal/auth"
	"project-showcase-backend/internal/database/models"
	apperrors "project-showcase-backend/internal/errors"
	"project-showcase-backend/internal/logger"
	"project-showcase-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CollaborationDecision is an owner's answer to a pending request
type CollaborationDecision string

const (
	DecisionAccept CollaborationDecision = "accept"
	DecisionReject CollaborationDecision = "reject"
)

// CollaborationService drives the request lifecycle:
// pending → accepted | rejected (terminal, stamps responded_at), or deletion
// while pending (requester cancel) / any time (admin remove).
type CollaborationService struct {
	db                *gorm.DB
	collaborationRepo *repository.CollaborationRepository
	projectRepo       *repository.ProjectRepository
	userRepo          *repository.UserRepository
	notificationRepo  *repository.NotificationRepository
	log               *logger.Logger
}

// NewCollaborationService creates a new collaboration service
func NewCollaborationService(db *gorm.DB, collaborationRepo *repository.CollaborationRepository, projectRepo *repository.ProjectRepository, userRepo *repository.UserRepository, notificationRepo *repository.NotificationRepository) *CollaborationService {
	return &CollaborationService{
		db:                db,
		collaborationRepo: collaborationRepo,
		projectRepo:       projectRepo,
		userRepo:          userRepo,
		notificationRepo:  notificationRepo,
		log:               logger.New(),
	}
}

// CollaborationResponse represents a collaboration request in API responses
type CollaborationResponse struct {
	ID           uuid.UUID                  `json:"id"`
	ProjectID    uuid.UUID                  `json:"project_id"`
	ProjectTitle string                     `json:"project_title,omitempty"`
	UserID       uuid.UUID                  `json:"user_id"`
	Username     string                     `json:"username,omitempty"`
	Status       models.CollaborationStatus `json:"status"`
	RequestedAt  time.Time                  `json:"requested_at"`
	RespondedAt  *time.Time                 `json:"responded_at,omitempty"`
}

// CollaborationListResponse represents a paginated list of collaboration requests
type CollaborationListResponse struct {
	Collaborations []CollaborationResponse `json:"collaborations"`
	Total          int64                   `json:"total"`
	Page           int                     `json:"page"`
	PageSize       int                     `json:"page_size"`
}

// Request creates a pending collaboration request from the actor onto a
// project and notifies the project owner. Refused when the project is
// missing or archived, when the actor owns the project, or when any row for
// (project, actor) already exists regardless of status.
func (s *CollaborationService) Request(actor auth.Actor, projectID uuid.UUID) (*CollaborationResponse, error) {
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
	if project.OwnerID == actor.UserID {
		return nil, apperrors.ErrOwnProjectCollaboration
	}

	if _, err := s.collaborationRepo.GetByProjectAndUser(projectID, actor.UserID); err == nil {
		return nil, apperrors.ErrCollaborationExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing collaboration: %w", err)
	}

	collaboration := &models.ProjectCollaboration{
		ProjectID:   projectID,
		UserID:      actor.UserID,
		Status:      models.CollaborationStatusPending,
		RequestedAt: time.Now(),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.collaborationRepo.WithTx(tx).Create(collaboration); err != nil {
			return fmt.Errorf("failed to create collaboration: %w", err)
		}
		notification := buildRequestNotification(project.OwnerID, project, actor.UserID, actor.Username)
		if err := s.notificationRepo.WithTx(tx).Create(notification); err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(collaboration, project.Title, actor.Username), nil
}

// Invite creates a pending request for another user on the actor's own
// project (the dashboard flow) and notifies the invitee. The target must
// resolve by username and be active.
func (s *CollaborationService) Invite(actor auth.Actor, projectID uuid.UUID, username string) (*CollaborationResponse, error) {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if project.OwnerID != actor.UserID && !actor.IsAdmin() {
		return nil, apperrors.ErrNotProjectOwner
	}

	target, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve username: %w", err)
	}
	if !target.IsActive() {
		return nil, apperrors.ErrUserNotActive
	}
	if target.ID == project.OwnerID {
		return nil, apperrors.ErrOwnProjectCollaboration
	}

	if _, err := s.collaborationRepo.GetByProjectAndUser(projectID, target.ID); err == nil {
		return nil, apperrors.ErrCollaborationExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing collaboration: %w", err)
	}

	collaboration := &models.ProjectCollaboration{
		ProjectID:   projectID,
		UserID:      target.ID,
		Status:      models.CollaborationStatusPending,
		RequestedAt: time.Now(),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.collaborationRepo.WithTx(tx).Create(collaboration); err != nil {
			return fmt.Errorf("failed to create collaboration: %w", err)
		}
		notification := buildInviteNotification(target.ID, project, actor.Username)
		if err := s.notificationRepo.WithTx(tx).Create(notification); err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(collaboration, project.Title, target.Username), nil
}

// Respond accepts or rejects a pending request. The project owner answers
// incoming requests and the invited user answers invitations; both outcomes
// are terminal kept records with responded_at set. The counterparty is
// notified either way.
func (s *CollaborationService) Respond(actor auth.Actor, collaborationID uuid.UUID, decision CollaborationDecision) (*CollaborationResponse, error) {
	return s.respond(actor, collaborationID, decision, false)
}

// AdminRespond is Respond without the ownership check
func (s *CollaborationService) AdminRespond(actor auth.Actor, collaborationID uuid.UUID, decision CollaborationDecision) (*CollaborationResponse, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrAdminRequired
	}
	return s.respond(actor, collaborationID, decision, true)
}

func (s *CollaborationService) respond(actor auth.Actor, collaborationID uuid.UUID, decision CollaborationDecision, bypassOwnership bool) (*CollaborationResponse, error) {
	if decision != DecisionAccept && decision != DecisionReject {
		return nil, apperrors.ErrInvalidResponse
	}

	collaboration, err := s.collaborationRepo.GetWithProject(collaborationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCollaborationNotFound
		}
		return nil, fmt.Errorf("failed to load collaboration: %w", err)
	}

	isOwner := collaboration.Project.OwnerID == actor.UserID
	isTarget := collaboration.UserID == actor.UserID
	if !bypassOwnership && !isOwner && !isTarget {
		return nil, apperrors.ErrNotCollaborationParty
	}
	if !collaboration.IsPending() {
		return nil, apperrors.ErrCollaborationNotPending
	}

	status := models.CollaborationStatusAccepted
	if decision == DecisionReject {
		status = models.CollaborationStatusRejected
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.collaborationRepo.WithTx(tx).SetStatus(collaborationID, status); err != nil {
			return fmt.Errorf("failed to update collaboration status: %w", err)
		}
		// The responder's counterparty gets the notification: the requester
		// when the owner answers a request, the owner when the invited user
		// answers an invitation.
		var notification *models.Notification
		if isTarget {
			notification = buildInviteResponseNotification(collaboration.Project.OwnerID, &collaboration.Project, actor.Username, status)
		} else {
			notification = buildResponseNotification(collaboration.UserID, &collaboration.Project, status)
		}
		if err := s.notificationRepo.WithTx(tx).Create(notification); err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.collaborationRepo.GetByID(collaborationID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload collaboration: %w", err)
	}

	return s.toResponse(updated, collaboration.Project.Title, ""), nil
}

// Cancel deletes a pending request. Only the requester may cancel, and only
// while the request is pending. No notification is produced.
func (s *CollaborationService) Cancel(actor auth.Actor, collaborationID uuid.UUID) error {
	collaboration, err := s.collaborationRepo.GetByID(collaborationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCollaborationNotFound
		}
		return fmt.Errorf("failed to load collaboration: %w", err)
	}

	if collaboration.UserID != actor.UserID {
		return apperrors.ErrNotRequester
	}
	if !collaboration.IsPending() {
		return apperrors.ErrCollaborationNotPending
	}

	if err := s.collaborationRepo.Delete(collaborationID); err != nil {
		return fmt.Errorf("failed to delete collaboration: %w", err)
	}
	return nil
}

// AdminRemove deletes a collaboration row regardless of status
func (s *CollaborationService) AdminRemove(actor auth.Actor, collaborationID uuid.UUID) error {
	if !actor.IsAdmin() {
		return apperrors.ErrAdminRequired
	}

	if _, err := s.collaborationRepo.GetByID(collaborationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCollaborationNotFound
		}
		return fmt.Errorf("failed to load collaboration: %w", err)
	}

	if err := s.collaborationRepo.Delete(collaborationID); err != nil {
		return fmt.Errorf("failed to delete collaboration: %w", err)
	}
	return nil
}

// ListRequests returns pending requests on the actor's owned projects
func (s *CollaborationService) ListRequests(actor auth.Actor, page, pageSize int) (*CollaborationListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	collaborations, total, err := s.collaborationRepo.ListPendingForOwner(actor.UserID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}

	return s.toListResponse(collaborations, total, page, pageSize), nil
}

// ListSent returns requests the actor has made
func (s *CollaborationService) ListSent(actor auth.Actor, page, pageSize int) (*CollaborationListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	collaborations, total, err := s.collaborationRepo.ListSentByUser(actor.UserID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent requests: %w", err)
	}

	return s.toListResponse(collaborations, total, page, pageSize), nil
}

// ListActive returns accepted collaborations where the actor is owner or
// collaborator
func (s *CollaborationService) ListActive(actor auth.Actor, page, pageSize int) (*CollaborationListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	collaborations, total, err := s.collaborationRepo.ListActiveForUser(actor.UserID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list active collaborations: %w", err)
	}

	return s.toListResponse(collaborations, total, page, pageSize), nil
}

func (s *CollaborationService) toResponse(c *models.ProjectCollaboration, projectTitle, username string) *CollaborationResponse {
	return &CollaborationResponse{
		ID:           c.ID,
		ProjectID:    c.ProjectID,
		ProjectTitle: projectTitle,
		UserID:       c.UserID,
		Username:     username,
		Status:       c.Status,
		RequestedAt:  c.RequestedAt,
		RespondedAt:  c.RespondedAt,
	}
}

func (s *CollaborationService) toListResponse(collaborations []models.ProjectCollaboration, total int64, page, pageSize int) *CollaborationListResponse {
	responses := make([]CollaborationResponse, len(collaborations))
	for i, c := range collaborations {
		responses[i] = *s.toResponse(&c, c.Project.Title, c.User.Username)
	}
	return &CollaborationListResponse{
		Collaborations: responses,
		Total:          total,
		Page:           page,
		PageSize:       pageSize,
	}
}

func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

func notificationData(fields map[string]interface{}) datatypes.JSON {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func buildRequestNotification(addressee uuid.UUID, project *models.Project, requesterID uuid.UUID, requesterName string) *models.Notification {
	related := project.ID
	return &models.Notification{
		UserID:    addressee,
		Type:      models.NotificationTypeCollaborationRequest,
		Title:     "New collaboration request",
		Message:   fmt.Sprintf("%s wants to collaborate on your project %q", requesterName, project.Title),
		RelatedID: &related,
		Data: notificationData(map[string]interface{}{
			"project_id":   project.ID,
			"requester_id": requesterID,
		}),
	}
}

func buildInviteNotification(addressee uuid.UUID, project *models.Project, ownerName string) *models.Notification {
	related := project.ID
	return &models.Notification{
		UserID:    addressee,
		Type:      models.NotificationTypeCollaborationRequest,
		Title:     "Collaboration invitation",
		Message:   fmt.Sprintf("%s invited you to collaborate on %q", ownerName, project.Title),
		RelatedID: &related,
		Data: notificationData(map[string]interface{}{
			"project_id": project.ID,
		}),
	}
}

func buildInviteResponseNotification(addressee uuid.UUID, project *models.Project, responderName string, status models.CollaborationStatus) *models.Notification {
	related := project.ID
	outcome := "accepted"
	if status == models.CollaborationStatusRejected {
		outcome = "rejected"
	}
	return &models.Notification{
		UserID:    addressee,
		Type:      models.NotificationTypeCollaborationResponse,
		Title:     "Collaboration invitation " + outcome,
		Message:   fmt.Sprintf("%s %s your invitation to collaborate on %q", responderName, outcome, project.Title),
		RelatedID: &related,
		Data: notificationData(map[string]interface{}{
			"project_id": project.ID,
			"status":     status,
		}),
	}
}

func buildResponseNotification(addressee uuid.UUID, project *models.Project, status models.CollaborationStatus) *models.Notification {
	related := project.ID
	outcome := "accepted"
	if status == models.CollaborationStatusRejected {
		outcome = "rejected"
	}
	return &models.Notification{
		UserID:    addressee,
		Type:      models.NotificationTypeCollaborationResponse,
		Title:     "Collaboration request " + outcome,
		Message:   fmt.Sprintf("Your collaboration request for %q was %s", project.Title, outcome),
		RelatedID: &related,
		Data: notificationData(map[string]interface{}{
			"project_id": project.ID,
			"status":     status,
		}),
	}
}
