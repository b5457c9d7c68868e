package testutils

import (
	"time"

	"project-showcase-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all model factories for test suites
type FactorySet struct {
	User          *UserFactory
	Project       *ProjectFactory
	Vote          *VoteFactory
	Star          *StarFactory
	Collaboration *CollaborationFactory
	Notification  *NotificationFactory
	Comment       *CommentFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:          NewUserFactory(),
		Project:       NewProjectFactory(),
		Vote:          NewVoteFactory(),
		Star:          NewStarFactory(),
		Collaboration: NewCollaborationFactory(),
		Notification:  NewNotificationFactory(),
		Comment:       NewCommentFactory(),
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. Username and email carry a
// UUID fragment so multiple users in one test never collide on the unique
// indexes.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	suffix := id.String()[:8]

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username: "student-" + suffix,
		Email:    "student-" + suffix + "@campus.test",
		FullName: "Test Student",
		Role:     models.UserRoleStudent,
		Status:   models.UserStatusActive,
	}
}

// WithUsername sets a custom username for the user
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	user.Email = username + "@campus.test"
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithStatus sets a custom status for the user
func (f *UserFactory) WithStatus(status models.UserStatus) *models.User {
	user := f.Create()
	user.Status = status
	return user
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	id := uuid.New()

	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OwnerID:          uuid.New(),
		Title:            "Test Project " + id.String()[:8],
		ShortDescription: "A project created for testing",
		Description:      "Longer description of the test project.",
		Branch:           "Computer Science",
		ProjectType:      "web",
		Status:           models.ProjectStatusActive,
	}
}

// WithOwner sets the owner ID for the project
func (f *ProjectFactory) WithOwner(ownerID uuid.UUID) *models.Project {
	project := f.Create()
	project.OwnerID = ownerID
	return project
}

// WithStatus sets a custom status for the project
func (f *ProjectFactory) WithStatus(status models.ProjectStatus) *models.Project {
	project := f.Create()
	project.Status = status
	return project
}

// WithGithubURL sets a GitHub repository link for the project
func (f *ProjectFactory) WithGithubURL(url string) *models.Project {
	project := f.Create()
	project.GithubURL = url
	return project
}

// VoteFactory provides methods to create test ProjectVote data
type VoteFactory struct{}

// NewVoteFactory creates a new VoteFactory
func NewVoteFactory() *VoteFactory {
	return &VoteFactory{}
}

// Create creates an upvote for the given project and user
func (f *VoteFactory) Create(projectID, userID uuid.UUID) *models.ProjectVote {
	return &models.ProjectVote{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID: projectID,
		UserID:    userID,
		VoteType:  models.VoteTypeUpvote,
	}
}

// WithType creates a vote of the given direction
func (f *VoteFactory) WithType(projectID, userID uuid.UUID, voteType models.VoteType) *models.ProjectVote {
	vote := f.Create(projectID, userID)
	vote.VoteType = voteType
	return vote
}

// StarFactory provides methods to create test ProjectStar data
type StarFactory struct{}

// NewStarFactory creates a new StarFactory
func NewStarFactory() *StarFactory {
	return &StarFactory{}
}

// Create creates a star for the given project and user
func (f *StarFactory) Create(projectID, userID uuid.UUID) *models.ProjectStar {
	return &models.ProjectStar{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID: projectID,
		UserID:    userID,
	}
}

// CollaborationFactory provides methods to create test ProjectCollaboration data
type CollaborationFactory struct{}

// NewCollaborationFactory creates a new CollaborationFactory
func NewCollaborationFactory() *CollaborationFactory {
	return &CollaborationFactory{}
}

// Create creates a pending collaboration request for the given project and user
func (f *CollaborationFactory) Create(projectID, userID uuid.UUID) *models.ProjectCollaboration {
	return &models.ProjectCollaboration{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:   projectID,
		UserID:      userID,
		Status:      models.CollaborationStatusPending,
		RequestedAt: time.Now(),
	}
}

// WithStatus creates a collaboration in the given state; terminal states get
// a responded_at stamp
func (f *CollaborationFactory) WithStatus(projectID, userID uuid.UUID, status models.CollaborationStatus) *models.ProjectCollaboration {
	collaboration := f.Create(projectID, userID)
	collaboration.Status = status
	if status.IsTerminal() {
		now := time.Now()
		collaboration.RespondedAt = &now
	}
	return collaboration
}

// NotificationFactory provides methods to create test Notification data
type NotificationFactory struct{}

// NewNotificationFactory creates a new NotificationFactory
func NewNotificationFactory() *NotificationFactory {
	return &NotificationFactory{}
}

// Create creates an unread collaboration-request notification for the user
func (f *NotificationFactory) Create(userID uuid.UUID) *models.Notification {
	return &models.Notification{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:  userID,
		Type:    models.NotificationTypeCollaborationRequest,
		Title:   "New collaboration request",
		Message: "Someone wants to collaborate on your project",
		IsRead:  false,
	}
}

// WithRelated attaches a related entity ID to the notification
func (f *NotificationFactory) WithRelated(userID, relatedID uuid.UUID) *models.Notification {
	notification := f.Create(userID)
	notification.RelatedID = &relatedID
	return notification
}

// Read creates an already-read notification
func (f *NotificationFactory) Read(userID uuid.UUID) *models.Notification {
	notification := f.Create(userID)
	now := time.Now()
	notification.IsRead = true
	notification.ReadAt = &now
	return notification
}

// CommentFactory provides methods to create test Comment data
type CommentFactory struct{}

// NewCommentFactory creates a new CommentFactory
func NewCommentFactory() *CommentFactory {
	return &CommentFactory{}
}

// Create creates a comment on the given project by the given user
func (f *CommentFactory) Create(projectID, userID uuid.UUID) *models.Comment {
	return &models.Comment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID: projectID,
		UserID:    userID,
		Body:      "Nice project, looking forward to the demo!",
	}
}
