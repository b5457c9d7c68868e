//go:build integration
// +build integration

package service

import (
	"context"
	"testing"

	"project-showcase-backend/internal/auth"
	"project-showcase-backend/internal/database/models"
	apperrors "project-showcase-backend/internal/errors"
	"project-showcase-backend/internal/repository"
	"project-showcase-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ProjectServiceTestSuite tests the project lifecycle against a real database
type ProjectServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	service       *ProjectService
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB

	suite.service = NewProjectService(
		db,
		repository.NewProjectRepository(db),
		repository.NewUserRepository(db),
		repository.NewVoteRepository(db),
		repository.NewStarRepository(db),
		repository.NewCollaborationRepository(db),
		repository.NewCommentRepository(db),
		repository.NewNotificationRepository(db),
		nil, // no GitHub enrichment in tests
		validator.New(),
	)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ProjectServiceTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
	return user
}

func (suite *ProjectServiceTestSuite) actorFor(user *models.User) auth.Actor {
	return auth.Actor{UserID: user.ID, Username: user.Username, Role: user.Role}
}

func (suite *ProjectServiceTestSuite) count(model interface{}, query string, args ...interface{}) int64 {
	var count int64
	suite.baseTestSuite.DB.Model(model).Where(query, args...).Count(&count)
	return count
}

func (suite *ProjectServiceTestSuite) TestCreate() {
	owner := suite.createUser()

	response, err := suite.service.Create(suite.actorFor(owner), &CreateProjectRequest{
		Title:            "Campus Ride Share",
		ShortDescription: "Matches students for shared commutes",
	})

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, response.ID)
	suite.Equal(models.ProjectStatusActive, response.Status)
	suite.Equal(owner.ID, response.OwnerID)
}

// TestCreateBroadcastsToStaffAndAdmins tests that publication notifies every
// active staff and admin account, and nobody else
func (suite *ProjectServiceTestSuite) TestCreateBroadcastsToStaffAndAdmins() {
	owner := suite.createUser()
	student := suite.createUser()

	staff := suite.factories.User.WithRole(models.UserRoleStaff)
	suite.NoError(suite.baseTestSuite.DB.Create(staff).Error)
	admin := suite.factories.User.WithRole(models.UserRoleAdmin)
	suite.NoError(suite.baseTestSuite.DB.Create(admin).Error)

	response, err := suite.service.Create(suite.actorFor(owner), &CreateProjectRequest{
		Title:            "Lab Inventory Tracker",
		ShortDescription: "Barcode-based tracking for lab equipment",
	})
	suite.NoError(err)

	suite.Equal(int64(1), suite.count(&models.Notification{}, "user_id = ? AND related_id = ?", staff.ID, response.ID))
	suite.Equal(int64(1), suite.count(&models.Notification{}, "user_id = ? AND related_id = ?", admin.ID, response.ID))
	suite.Equal(int64(0), suite.count(&models.Notification{}, "user_id = ?", student.ID))
}

// TestCreateWithInvites tests that resolvable invitees get pending rows and
// notifications while unresolvable ones are skipped and reported
func (suite *ProjectServiceTestSuite) TestCreateWithInvites() {
	owner := suite.createUser()
	invitee := suite.createUser()

	response, err := suite.service.Create(suite.actorFor(owner), &CreateProjectRequest{
		Title:            "Campus Ride Share",
		ShortDescription: "Matches students for shared commutes",
		Collaborators:    []string{invitee.Username, "ghost", owner.Username, invitee.Username},
	})

	suite.NoError(err)
	suite.Equal(int64(1), suite.count(&models.ProjectCollaboration{}, "project_id = ?", response.ID))
	suite.Equal(int64(1), suite.count(&models.Notification{}, "user_id = ? AND related_id = ?", invitee.ID, response.ID))

	suite.Len(response.SkippedInvites, 3)
	reasons := map[string]string{}
	for _, s := range response.SkippedInvites {
		reasons[s.Username+"/"+s.Reason] = s.Reason
	}
	suite.Contains(reasons, "ghost/user not found")
	suite.Contains(reasons, owner.Username+"/cannot invite yourself")
	suite.Contains(reasons, invitee.Username+"/duplicate invite")
}

func (suite *ProjectServiceTestSuite) TestCreateTooManyInvites() {
	owner := suite.createUser()

	_, err := suite.service.Create(suite.actorFor(owner), &CreateProjectRequest{
		Title:            "Campus Ride Share",
		ShortDescription: "Matches students for shared commutes",
		Collaborators:    []string{"a", "b", "c", "d", "e", "f"},
	})
	suite.ErrorIs(err, apperrors.ErrTooManyCollaborators)
}

func (suite *ProjectServiceTestSuite) TestCreateValidationFailure() {
	owner := suite.createUser()

	_, err := suite.service.Create(suite.actorFor(owner), &CreateProjectRequest{
		Title:            "ab", // below minimum length
		ShortDescription: "Short",
	})
	suite.Error(err)

	suite.Equal(int64(0), suite.count(&models.Project{}, "owner_id = ?", owner.ID))
}

func (suite *ProjectServiceTestSuite) TestGetByID() {
	owner := suite.createUser()

	created, err := suite.service.Create(suite.actorFor(owner), &CreateProjectRequest{
		Title:            "Campus Ride Share",
		ShortDescription: "Matches students for shared commutes",
	})
	suite.NoError(err)

	response, err := suite.service.GetByID(context.Background(), created.ID)
	suite.NoError(err)
	suite.Equal(owner.Username, response.OwnerUsername)
	suite.Nil(response.GithubRepo)
}

func (suite *ProjectServiceTestSuite) TestUpdateByNonOwner() {
	owner := suite.createUser()
	stranger := suite.createUser()

	created, err := suite.service.Create(suite.actorFor(owner), &CreateProjectRequest{
		Title:            "Campus Ride Share",
		ShortDescription: "Matches students for shared commutes",
	})
	suite.NoError(err)

	_, err = suite.service.Update(suite.actorFor(stranger), created.ID, &UpdateProjectRequest{
		Title:            "Hijacked",
		ShortDescription: "Should not happen",
	})
	suite.ErrorIs(err, apperrors.ErrNotProjectOwner)
}

// TestDeleteCascades tests that deleting a project removes votes, stars,
// collaborations, comments and related notifications in one pass
func (suite *ProjectServiceTestSuite) TestDeleteCascades() {
	owner := suite.createUser()
	other := suite.createUser()

	created, err := suite.service.Create(suite.actorFor(owner), &CreateProjectRequest{
		Title:            "Campus Ride Share",
		ShortDescription: "Matches students for shared commutes",
		Collaborators:    []string{other.Username},
	})
	suite.NoError(err)

	db := suite.baseTestSuite.DB
	suite.NoError(db.Create(suite.factories.Vote.Create(created.ID, other.ID)).Error)
	suite.NoError(db.Create(suite.factories.Star.Create(created.ID, other.ID)).Error)
	suite.NoError(db.Create(suite.factories.Comment.Create(created.ID, other.ID)).Error)

	err = suite.service.Delete(suite.actorFor(owner), created.ID)
	suite.NoError(err)

	suite.Equal(int64(0), suite.count(&models.Project{}, "id = ?", created.ID))
	suite.Equal(int64(0), suite.count(&models.ProjectVote{}, "project_id = ?", created.ID))
	suite.Equal(int64(0), suite.count(&models.ProjectStar{}, "project_id = ?", created.ID))
	suite.Equal(int64(0), suite.count(&models.ProjectCollaboration{}, "project_id = ?", created.ID))
	suite.Equal(int64(0), suite.count(&models.Comment{}, "project_id = ?", created.ID))
	suite.Equal(int64(0), suite.count(&models.Notification{}, "related_id = ?", created.ID))
}

// TestDeleteRollsBackOnFailure tests that a failure partway through the
// cascade leaves the project and every dependent row untouched. A trigger on
// comments makes the comment-delete step fail after votes, stars and
// collaborations have already been deleted inside the transaction.
func (suite *ProjectServiceTestSuite) TestDeleteRollsBackOnFailure() {
	owner := suite.createUser()
	other := suite.createUser()

	created, err := suite.service.Create(suite.actorFor(owner), &CreateProjectRequest{
		Title:            "Campus Ride Share",
		ShortDescription: "Matches students for shared commutes",
		Collaborators:    []string{other.Username},
	})
	suite.NoError(err)

	db := suite.baseTestSuite.DB
	suite.NoError(db.Create(suite.factories.Vote.Create(created.ID, other.ID)).Error)
	suite.NoError(db.Create(suite.factories.Star.Create(created.ID, other.ID)).Error)
	suite.NoError(db.Create(suite.factories.Comment.Create(created.ID, other.ID)).Error)

	suite.NoError(db.Exec(`
		CREATE OR REPLACE FUNCTION block_comment_delete() RETURNS trigger AS $$
		BEGIN
			RAISE EXCEPTION 'comment delete blocked';
		END;
		$$ LANGUAGE plpgsql;
	`).Error)
	suite.NoError(db.Exec(`
		CREATE TRIGGER block_comment_delete BEFORE DELETE ON comments
		FOR EACH ROW EXECUTE FUNCTION block_comment_delete();
	`).Error)
	defer func() {
		db.Exec(`DROP TRIGGER IF EXISTS block_comment_delete ON comments;`)
		db.Exec(`DROP FUNCTION IF EXISTS block_comment_delete();`)
	}()

	err = suite.service.Delete(suite.actorFor(owner), created.ID)
	suite.Error(err)

	// Everything survives, including the rows deleted before the failure
	suite.Equal(int64(1), suite.count(&models.Project{}, "id = ?", created.ID))
	suite.Equal(int64(1), suite.count(&models.ProjectVote{}, "project_id = ?", created.ID))
	suite.Equal(int64(1), suite.count(&models.ProjectStar{}, "project_id = ?", created.ID))
	suite.Equal(int64(1), suite.count(&models.ProjectCollaboration{}, "project_id = ?", created.ID))
	suite.Equal(int64(1), suite.count(&models.Comment{}, "project_id = ?", created.ID))
	suite.NotZero(suite.count(&models.Notification{}, "related_id = ?", created.ID))
}

func (suite *ProjectServiceTestSuite) TestDeleteByNonOwner() {
	owner := suite.createUser()
	stranger := suite.createUser()

	created, err := suite.service.Create(suite.actorFor(owner), &CreateProjectRequest{
		Title:            "Campus Ride Share",
		ShortDescription: "Matches students for shared commutes",
	})
	suite.NoError(err)

	err = suite.service.Delete(suite.actorFor(stranger), created.ID)
	suite.ErrorIs(err, apperrors.ErrNotProjectOwner)

	suite.Equal(int64(1), suite.count(&models.Project{}, "id = ?", created.ID))
}

func (suite *ProjectServiceTestSuite) TestArchiveAndActivate() {
	owner := suite.createUser()
	admin := suite.factories.User.WithRole(models.UserRoleAdmin)
	suite.NoError(suite.baseTestSuite.DB.Create(admin).Error)

	created, err := suite.service.Create(suite.actorFor(owner), &CreateProjectRequest{
		Title:            "Campus Ride Share",
		ShortDescription: "Matches students for shared commutes",
	})
	suite.NoError(err)

	// Owner is not enough
	suite.ErrorIs(suite.service.Archive(suite.actorFor(owner), created.ID), apperrors.ErrAdminRequired)

	suite.NoError(suite.service.Archive(suite.actorFor(admin), created.ID))

	var project models.Project
	suite.NoError(suite.baseTestSuite.DB.First(&project, "id = ?", created.ID).Error)
	suite.Equal(models.ProjectStatusArchived, project.Status)

	suite.NoError(suite.service.Activate(suite.actorFor(admin), created.ID))
	suite.NoError(suite.baseTestSuite.DB.First(&project, "id = ?", created.ID).Error)
	suite.Equal(models.ProjectStatusActive, project.Status)
}

func (suite *ProjectServiceTestSuite) TestListMine() {
	owner := suite.createUser()
	other := suite.createUser()

	for _, actor := range []*models.User{owner, owner, other} {
		_, err := suite.service.Create(suite.actorFor(actor), &CreateProjectRequest{
			Title:            "Project " + uuid.NewString()[:8],
			ShortDescription: "One of several",
		})
		suite.NoError(err)
	}

	mine, err := suite.service.ListMine(suite.actorFor(owner), 1, 20)
	suite.NoError(err)
	suite.Equal(int64(2), mine.Total)
}

// TestProjectServiceTestSuite runs the test suite
func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
