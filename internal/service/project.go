package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"project-showcase-backend/internal/auth"
	"project-showcase-backend/internal/database/models"
	apperrors "project-showcase-backend/internal/errors"
	"project-showcase-backend/internal/logger"
	"project-showcase-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxCollaboratorInvites bounds the invite list on project creation
const maxCollaboratorInvites = 5

// ProjectService handles the project lifecycle: creation with collaborator
// invites, updates, status flips and the transactional cascade delete.
type ProjectService struct {
	db                *gorm.DB
	projectRepo       *repository.ProjectRepository
	userRepo          *repository.UserRepository
	voteRepo          *repository.VoteRepository
	starRepo          *repository.StarRepository
	collaborationRepo *repository.CollaborationRepository
	commentRepo       *repository.CommentRepository
	notificationRepo  *repository.NotificationRepository
	githubService     *GitHubService
	validator         *validator.Validate
	log               *logger.Logger
}

// NewProjectService creates a new project service
func NewProjectService(db *gorm.DB, projectRepo *repository.ProjectRepository, userRepo *repository.UserRepository, voteRepo *repository.VoteRepository, starRepo *repository.StarRepository, collaborationRepo *repository.CollaborationRepository, commentRepo *repository.CommentRepository, notificationRepo *repository.NotificationRepository, githubService *GitHubService, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		db:                db,
		projectRepo:       projectRepo,
		userRepo:          userRepo,
		voteRepo:          voteRepo,
		starRepo:          starRepo,
		collaborationRepo: collaborationRepo,
		commentRepo:       commentRepo,
		notificationRepo:  notificationRepo,
		githubService:     githubService,
		validator:         validator,
		log:               logger.New(),
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Title            string   `json:"title" validate:"required,min=3,max=200"`
	ShortDescription string   `json:"short_description" validate:"required,max=300"`
	Description      string   `json:"description,omitempty" validate:"max=10000"`
	Branch           string   `json:"branch,omitempty" validate:"max=100"`
	ProjectType      string   `json:"project_type,omitempty" validate:"max=100"`
	GithubURL        string   `json:"github_url,omitempty" validate:"omitempty,url,max=500"`
	Collaborators    []string `json:"collaborators,omitempty"`
}

// UpdateProjectRequest represents the request to update a project
type UpdateProjectRequest struct {
	Title            string `json:"title" validate:"required,min=3,max=200"`
	ShortDescription string `json:"short_description" validate:"required,max=300"`
	Description      string `json:"description,omitempty" validate:"max=10000"`
	Branch           string `json:"branch,omitempty" validate:"max=100"`
	ProjectType      string `json:"project_type,omitempty" validate:"max=100"`
	GithubURL        string `json:"github_url,omitempty" validate:"omitempty,url,max=500"`
}

// SkippedInvite reports a collaborator username that could not be invited
// during project creation and why
type SkippedInvite struct {
	Username string `json:"username"`
	Reason   string `json:"reason"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID               uuid.UUID            `json:"id"`
	OwnerID          uuid.UUID            `json:"owner_id"`
	OwnerUsername    string               `json:"owner_username,omitempty"`
	Title            string               `json:"title"`
	ShortDescription string               `json:"short_description"`
	Description      string               `json:"description,omitempty"`
	Branch           string               `json:"branch,omitempty"`
	ProjectType      string               `json:"project_type,omitempty"`
	GithubURL        string               `json:"github_url,omitempty"`
	Status           models.ProjectStatus `json:"status"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
	GithubRepo       *RepoMetadata        `json:"github_repo,omitempty"`
	SkippedInvites   []SkippedInvite      `json:"skipped_invites,omitempty"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create publishes a new project. The project insert, the staff/admin
// broadcast and every resolvable collaborator invite (pending row plus
// request notification) run inside one transaction; any failure rolls the
// whole creation back. Invitees that cannot be resolved or already hold a
// row are skipped and reported, not fatal.
func (s *ProjectService) Create(actor auth.Actor, req *CreateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if len(req.Collaborators) > maxCollaboratorInvites {
		return nil, apperrors.ErrTooManyCollaborators
	}

	project := &models.Project{
		OwnerID:          actor.UserID,
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Branch:           req.Branch,
		ProjectType:      req.ProjectType,
		GithubURL:        req.GithubURL,
		Status:           models.ProjectStatusActive,
	}

	var skipped []SkippedInvite
	err := s.db.Transaction(func(tx *gorm.DB) error {
		projects := s.projectRepo.WithTx(tx)
		collaborations := s.collaborationRepo.WithTx(tx)
		notifications := s.notificationRepo.WithTx(tx)
		users := s.userRepo.WithTx(tx)

		if err := projects.Create(project); err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}

		related := project.ID
		if err := notifications.BroadcastToRoles(
			[]models.UserRole{models.UserRoleStaff, models.UserRoleAdmin},
			models.NotificationTypeProjectApproval,
			"New project published",
			fmt.Sprintf("%s published a new project: %q", actor.Username, project.Title),
			&related,
		); err != nil {
			return fmt.Errorf("failed to broadcast project notification: %w", err)
		}

		seen := map[string]bool{}
		for _, username := range req.Collaborators {
			if seen[username] {
				skipped = append(skipped, SkippedInvite{Username: username, Reason: "duplicate invite"})
				continue
			}
			seen[username] = true

			target, err := users.GetByUsername(username)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					skipped = append(skipped, SkippedInvite{Username: username, Reason: "user not found"})
					continue
				}
				return fmt.Errorf("failed to resolve invitee %q: %w", username, err)
			}
			if !target.IsActive() {
				skipped = append(skipped, SkippedInvite{Username: username, Reason: "user not active"})
				continue
			}
			if target.ID == actor.UserID {
				skipped = append(skipped, SkippedInvite{Username: username, Reason: "cannot invite yourself"})
				continue
			}
			if _, err := collaborations.GetByProjectAndUser(project.ID, target.ID); err == nil {
				skipped = append(skipped, SkippedInvite{Username: username, Reason: "already invited"})
				continue
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check existing invite for %q: %w", username, err)
			}

			if err := collaborations.Create(&models.ProjectCollaboration{
				ProjectID:   project.ID,
				UserID:      target.ID,
				Status:      models.CollaborationStatusPending,
				RequestedAt: time.Now(),
			}); err != nil {
				return fmt.Errorf("failed to create invite for %q: %w", username, err)
			}
			if err := notifications.Create(buildInviteNotification(target.ID, project, actor.Username)); err != nil {
				return fmt.Errorf("failed to create invite notification for %q: %w", username, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	response := s.toResponse(project, actor.Username)
	response.SkippedInvites = skipped
	return response, nil
}

// GetByID retrieves a project with owner details. When GitHub enrichment is
// configured and the project carries a repo link, the repo metadata is
// attached; enrichment failures are logged and leave the field empty.
func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*ProjectResponse, error) {
	project, err := s.projectRepo.GetWithOwner(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	response := s.toResponse(project, project.Owner.Username)

	if s.githubService != nil && project.GithubURL != "" {
		metadata, err := s.githubService.GetRepoMetadata(ctx, project.GithubURL)
		if err != nil {
			s.log.WithField("project_id", id).WithError(err).Warn("github enrichment failed")
		} else {
			response.GithubRepo = metadata
		}
	}

	return response, nil
}

// List retrieves projects matching the filter with pagination
func (s *ProjectService) List(filter repository.ProjectFilter, page, pageSize int) (*ProjectListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	projects, total, err := s.projectRepo.List(filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return s.toListResponse(projects, total, page, pageSize), nil
}

// ListMine retrieves the actor's own projects
func (s *ProjectService) ListMine(actor auth.Actor, page, pageSize int) (*ProjectListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	projects, total, err := s.projectRepo.GetByOwnerID(actor.UserID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list own projects: %w", err)
	}

	return s.toListResponse(projects, total, page, pageSize), nil
}

// Update edits a project's fields. Owner only; no cascading effects.
func (s *ProjectService) Update(actor auth.Actor, id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if project.OwnerID != actor.UserID && !actor.IsAdmin() {
		return nil, apperrors.ErrNotProjectOwner
	}

	project.Title = req.Title
	project.ShortDescription = req.ShortDescription
	project.Description = req.Description
	project.Branch = req.Branch
	project.ProjectType = req.ProjectType
	project.GithubURL = req.GithubURL

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return s.toResponse(project, ""), nil
}

// Delete removes a project and every dependent row in one transaction:
// votes, stars, collaborations, comments, then notifications that reference
// the project, then the project itself. Any failure rolls everything back.
// Ownership is verified before the transaction starts.
func (s *ProjectService) Delete(actor auth.Actor, id uuid.UUID) error {
	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}

	if project.OwnerID != actor.UserID && !actor.IsAdmin() {
		return apperrors.ErrNotProjectOwner
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.voteRepo.WithTx(tx).DeleteByProject(id); err != nil {
			return fmt.Errorf("failed to delete votes: %w", err)
		}
		if err := s.starRepo.WithTx(tx).DeleteByProject(id); err != nil {
			return fmt.Errorf("failed to delete stars: %w", err)
		}
		if err := s.collaborationRepo.WithTx(tx).DeleteByProject(id); err != nil {
			return fmt.Errorf("failed to delete collaborations: %w", err)
		}
		if err := s.commentRepo.WithTx(tx).DeleteByProject(id); err != nil {
			return fmt.Errorf("failed to delete comments: %w", err)
		}
		if err := s.notificationRepo.WithTx(tx).DeleteByRelatedID(id); err != nil {
			return fmt.Errorf("failed to delete related notifications: %w", err)
		}
		if err := s.projectRepo.WithTx(tx).Delete(id); err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}
		return nil
	})
}

// Archive flips a project to archived. Admin only; no cascade.
func (s *ProjectService) Archive(actor auth.Actor, id uuid.UUID) error {
	return s.setStatus(actor, id, models.ProjectStatusArchived)
}

// Activate flips a project back to active. Admin only.
func (s *ProjectService) Activate(actor auth.Actor, id uuid.UUID) error {
	return s.setStatus(actor, id, models.ProjectStatusActive)
}

func (s *ProjectService) setStatus(actor auth.Actor, id uuid.UUID, status models.ProjectStatus) error {
	if !actor.IsAdmin() {
		return apperrors.ErrAdminRequired
	}

	if _, err := s.projectRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}

	if err := s.projectRepo.SetStatus(id, status); err != nil {
		return fmt.Errorf("failed to set project status: %w", err)
	}
	return nil
}

func (s *ProjectService) toResponse(project *models.Project, ownerUsername string) *ProjectResponse {
	return &ProjectResponse{
		ID:               project.ID,
		OwnerID:          project.OwnerID,
		OwnerUsername:    ownerUsername,
		Title:            project.Title,
		ShortDescription: project.ShortDescription,
		Description:      project.Description,
		Branch:           project.Branch,
		ProjectType:      project.ProjectType,
		GithubURL:        project.GithubURL,
		Status:           project.Status,
		CreatedAt:        project.CreatedAt,
		UpdatedAt:        project.UpdatedAt,
	}
}

func (s *ProjectService) toListResponse(projects []models.Project, total int64, page, pageSize int) *ProjectListResponse {
	responses := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = *s.toResponse(&project, "")
	}
	return &ProjectListResponse{
		Projects: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
