package service

import (
	"errors"
	"fmt"
	"time"

	"project-showcase-backend/internal/auth"
	"project-showcase-backend/internal/database/models"
	apperrors "project-showcase-backend/internal/errors"
	"project-showcase-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentService handles project comments
type CommentService struct {
	commentRepo *repository.CommentRepository
	projectRepo *repository.ProjectRepository
	validator   *validator.Validate
}

// NewCommentService creates a new comment service
func NewCommentService(commentRepo *repository.CommentRepository, projectRepo *repository.ProjectRepository, validator *validator.Validate) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		projectRepo: projectRepo,
		validator:   validator,
	}
}

// CreateCommentRequest represents the request to comment on a project
type CreateCommentRequest struct {
	Body string `json:"body" validate:"required,min=1,max=2000"`
}

// CommentResponse represents a comment in API responses
type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentListResponse represents a paginated list of comments
type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create adds a comment to an active project
func (s *CommentService) Create(actor auth.Actor, projectID uuid.UUID, req *CreateCommentRequest) (*CommentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
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

	comment := &models.Comment{
		ProjectID: projectID,
		UserID:    actor.UserID,
		Body:      req.Body,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return &CommentResponse{
		ID:        comment.ID,
		ProjectID: comment.ProjectID,
		UserID:    comment.UserID,
		Username:  actor.Username,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt,
	}, nil
}

// List returns a project's comments, newest first
func (s *CommentService) List(projectID uuid.UUID, page, pageSize int) (*CommentListResponse, error) {
	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	comments, total, err := s.commentRepo.ListByProject(projectID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	responses := make([]CommentResponse, len(comments))
	for i, c := range comments {
		responses[i] = CommentResponse{
			ID:        c.ID,
			ProjectID: c.ProjectID,
			UserID:    c.UserID,
			Username:  c.User.Username,
			Body:      c.Body,
			CreatedAt: c.CreatedAt,
		}
	}

	return &CommentListResponse{
		Comments: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Delete removes a comment. Author or admin only.
func (s *CommentService) Delete(actor auth.Actor, id uuid.UUID) error {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return fmt.Errorf("failed to load comment: %w", err)
	}

	if comment.UserID != actor.UserID && !actor.IsAdmin() {
		return apperrors.ErrNotCommentAuthor
	}

	if err := s.commentRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
