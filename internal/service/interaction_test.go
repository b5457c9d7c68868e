//go:build integration
// +build integration

package service

import (
	"testing"

	"project-showcase-backend/internal/auth"
	"project-showcase-backend/internal/database/models"
	apperrors "project-showcase-backend/internal/errors"
	"project-showcase-backend/internal/repository"
	"project-showcase-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// InteractionServiceTestSuite tests vote and star toggle semantics against a
// real database
type InteractionServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	service       *InteractionService
	voteRepo      *repository.VoteRepository
	starRepo      *repository.StarRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *InteractionServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB

	suite.voteRepo = repository.NewVoteRepository(db)
	suite.starRepo = repository.NewStarRepository(db)
	suite.service = NewInteractionService(
		db,
		suite.voteRepo,
		suite.starRepo,
		repository.NewCommentRepository(db),
		repository.NewProjectRepository(db),
	)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *InteractionServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *InteractionServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *InteractionServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *InteractionServiceTestSuite) createActor() auth.Actor {
	user := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
	return auth.Actor{UserID: user.ID, Username: user.Username, Role: user.Role}
}

func (suite *InteractionServiceTestSuite) createActiveProject() *models.Project {
	owner := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(owner).Error)

	project := suite.factories.Project.WithOwner(owner.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(project).Error)
	return project
}

func (suite *InteractionServiceTestSuite) voteRowCount(project *models.Project, actor auth.Actor) int64 {
	var count int64
	suite.baseTestSuite.DB.Model(&models.ProjectVote{}).
		Where("project_id = ? AND user_id = ?", project.ID, actor.UserID).
		Count(&count)
	return count
}

func (suite *InteractionServiceTestSuite) TestVoteFirstTime() {
	actor := suite.createActor()
	project := suite.createActiveProject()

	result, err := suite.service.Vote(actor, project.ID, models.VoteTypeUpvote)

	suite.NoError(err)
	suite.True(result.IsActive)
	suite.Equal(int64(1), result.Count)
}

// TestVoteSameDirectionTogglesOff tests that repeating a vote removes it
func (suite *InteractionServiceTestSuite) TestVoteSameDirectionTogglesOff() {
	actor := suite.createActor()
	project := suite.createActiveProject()

	_, err := suite.service.Vote(actor, project.ID, models.VoteTypeUpvote)
	suite.NoError(err)

	result, err := suite.service.Vote(actor, project.ID, models.VoteTypeUpvote)
	suite.NoError(err)
	suite.False(result.IsActive)
	suite.Equal(int64(0), result.Count)
	suite.Equal(int64(0), suite.voteRowCount(project, actor))
}

// TestVoteOppositeDirectionSwitches tests that the single vote row flips
// direction instead of accumulating
func (suite *InteractionServiceTestSuite) TestVoteOppositeDirectionSwitches() {
	actor := suite.createActor()
	project := suite.createActiveProject()

	_, err := suite.service.Vote(actor, project.ID, models.VoteTypeUpvote)
	suite.NoError(err)

	result, err := suite.service.Vote(actor, project.ID, models.VoteTypeDownvote)
	suite.NoError(err)
	suite.True(result.IsActive)
	suite.Equal(int64(1), result.Count)

	suite.Equal(int64(1), suite.voteRowCount(project, actor))

	upvotes, err := suite.voteRepo.CountByType(project.ID, models.VoteTypeUpvote)
	suite.NoError(err)
	suite.Equal(int64(0), upvotes)
}

func (suite *InteractionServiceTestSuite) TestVoteOnArchivedProject() {
	actor := suite.createActor()
	project := suite.createActiveProject()
	suite.NoError(suite.baseTestSuite.DB.Model(project).Update("status", models.ProjectStatusArchived).Error)

	_, err := suite.service.Vote(actor, project.ID, models.VoteTypeUpvote)
	suite.ErrorIs(err, apperrors.ErrProjectNotActive)
}

func (suite *InteractionServiceTestSuite) TestVoteInvalidType() {
	actor := suite.createActor()
	project := suite.createActiveProject()

	_, err := suite.service.Vote(actor, project.ID, models.VoteType("sideways"))
	suite.ErrorIs(err, apperrors.ErrInvalidVoteType)
}

// TestStarIdempotent tests that starring twice keeps one row and stays active
func (suite *InteractionServiceTestSuite) TestStarIdempotent() {
	actor := suite.createActor()
	project := suite.createActiveProject()

	first, err := suite.service.Star(actor, project.ID)
	suite.NoError(err)
	suite.True(first.IsActive)
	suite.Equal(int64(1), first.Count)

	second, err := suite.service.Star(actor, project.ID)
	suite.NoError(err)
	suite.True(second.IsActive)
	suite.Equal(int64(1), second.Count)
}

func (suite *InteractionServiceTestSuite) TestUnstar() {
	actor := suite.createActor()
	project := suite.createActiveProject()

	_, err := suite.service.Star(actor, project.ID)
	suite.NoError(err)

	result, err := suite.service.Unstar(actor, project.ID)
	suite.NoError(err)
	suite.False(result.IsActive)
	suite.Equal(int64(0), result.Count)
}

// TestUnstarWithoutStar tests that removing a missing star is a quiet no-op
func (suite *InteractionServiceTestSuite) TestUnstarWithoutStar() {
	actor := suite.createActor()
	project := suite.createActiveProject()

	result, err := suite.service.Unstar(actor, project.ID)
	suite.NoError(err)
	suite.False(result.IsActive)
	suite.Equal(int64(0), result.Count)
}

func (suite *InteractionServiceTestSuite) TestGetStats() {
	actor := suite.createActor()
	other := suite.createActor()
	project := suite.createActiveProject()

	_, err := suite.service.Vote(actor, project.ID, models.VoteTypeUpvote)
	suite.NoError(err)
	_, err = suite.service.Vote(other, project.ID, models.VoteTypeDownvote)
	suite.NoError(err)
	_, err = suite.service.Star(actor, project.ID)
	suite.NoError(err)

	stats, err := suite.service.GetStats(actor, project.ID)
	suite.NoError(err)
	suite.Equal(int64(1), stats.Upvotes)
	suite.Equal(int64(1), stats.Downvotes)
	suite.Equal(int64(1), stats.Stars)
	suite.True(stats.UserUpvoted)
	suite.False(stats.UserDownvoted)
	suite.True(stats.UserStarred)

	// The other voter sees the same totals but their own flags
	stats, err = suite.service.GetStats(other, project.ID)
	suite.NoError(err)
	suite.True(stats.UserDownvoted)
	suite.False(stats.UserUpvoted)
	suite.False(stats.UserStarred)
}

// TestInteractionServiceTestSuite runs the test suite
func TestInteractionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InteractionServiceTestSuite))
}
