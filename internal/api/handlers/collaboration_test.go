package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"project-showcase-backend/internal/api/handlers"
	"project-showcase-backend/internal/database/models"
	apperrors "project-showcase-backend/internal/errors"
	"project-showcase-backend/internal/mocks"
	"project-showcase-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CollaborationHandlerTestSuite defines the test suite for CollaborationHandler
type CollaborationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCollaborations
	handler     *handlers.CollaborationHandler
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *CollaborationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCollaborations(suite.ctrl)
	suite.handler = handlers.NewCollaborationHandler(suite.mockService)
	suite.router = gin.New()
	suite.router.Use(withActor(testActor()))
	suite.setupRoutes()
}

// TearDownTest cleans up after each test
func (suite *CollaborationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CollaborationHandlerTestSuite) setupRoutes() {
	suite.router.POST("/projects/:id/collaborations", suite.handler.Request)
	suite.router.POST("/projects/:id/collaborations/invite", suite.handler.Invite)
	suite.router.POST("/collaborations/:id/respond", suite.handler.Respond)
	suite.router.DELETE("/collaborations/:id", suite.handler.Cancel)
	suite.router.GET("/collaborations/requests", suite.handler.ListRequests)
	suite.router.GET("/collaborations/sent", suite.handler.ListSent)
	suite.router.GET("/collaborations/active", suite.handler.ListActive)
}

// TestRequest tests the Request handler
func (suite *CollaborationHandlerTestSuite) TestRequest() {
	projectID := uuid.New()

	suite.T().Run("Successful request", func(t *testing.T) {
		suite.mockService.EXPECT().
			Request(testActor(), projectID).
			Return(&service.CollaborationResponse{
				ID:          uuid.New(),
				ProjectID:   projectID,
				UserID:      testActor().UserID,
				Status:      models.CollaborationStatusPending,
				RequestedAt: time.Now(),
			}, nil)

		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/projects/%s/collaborations", projectID), nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp service.CollaborationResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, models.CollaborationStatusPending, resp.Status)
	})

	suite.T().Run("Own project is a business refusal", func(t *testing.T) {
		suite.mockService.EXPECT().
			Request(testActor(), projectID).
			Return(nil, apperrors.ErrOwnProjectCollaboration)

		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/projects/%s/collaborations", projectID), nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp handlers.ActionResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
	})

	suite.T().Run("Duplicate request is a business refusal", func(t *testing.T) {
		suite.mockService.EXPECT().
			Request(testActor(), projectID).
			Return(nil, apperrors.ErrCollaborationExists)

		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/projects/%s/collaborations", projectID), nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "already exists")
	})

	suite.T().Run("Invalid UUID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/projects/nope/collaborations", nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestInvite tests the Invite handler
func (suite *CollaborationHandlerTestSuite) TestInvite() {
	projectID := uuid.New()

	suite.T().Run("Successful invite", func(t *testing.T) {
		suite.mockService.EXPECT().
			Invite(testActor(), projectID, "bob").
			Return(&service.CollaborationResponse{
				ID:        uuid.New(),
				ProjectID: projectID,
				Username:  "bob",
				Status:    models.CollaborationStatusPending,
			}, nil)

		body, _ := json.Marshal(handlers.InviteRequest{Username: "bob"})
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/projects/%s/collaborations/invite", projectID), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	suite.T().Run("Not the owner", func(t *testing.T) {
		suite.mockService.EXPECT().
			Invite(testActor(), projectID, "bob").
			Return(nil, apperrors.ErrNotProjectOwner)

		body, _ := json.Marshal(handlers.InviteRequest{Username: "bob"})
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/projects/%s/collaborations/invite", projectID), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	suite.T().Run("Missing username", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/projects/%s/collaborations/invite", projectID), bytes.NewBuffer([]byte("{}")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestRespond tests the Respond handler
func (suite *CollaborationHandlerTestSuite) TestRespond() {
	collaborationID := uuid.New()

	suite.T().Run("Accept", func(t *testing.T) {
		respondedAt := time.Now()
		suite.mockService.EXPECT().
			Respond(testActor(), collaborationID, service.DecisionAccept).
			Return(&service.CollaborationResponse{
				ID:          collaborationID,
				Status:      models.CollaborationStatusAccepted,
				RespondedAt: &respondedAt,
			}, nil)

		body, _ := json.Marshal(handlers.RespondRequest{Decision: service.DecisionAccept})
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/collaborations/%s/respond", collaborationID), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp service.CollaborationResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, models.CollaborationStatusAccepted, resp.Status)
		assert.NotNil(t, resp.RespondedAt)
	})

	suite.T().Run("Outsider gets forbidden", func(t *testing.T) {
		suite.mockService.EXPECT().
			Respond(testActor(), collaborationID, service.DecisionReject).
			Return(nil, apperrors.ErrNotCollaborationParty)

		body, _ := json.Marshal(handlers.RespondRequest{Decision: service.DecisionReject})
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/collaborations/%s/respond", collaborationID), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	suite.T().Run("Already responded is a business refusal", func(t *testing.T) {
		suite.mockService.EXPECT().
			Respond(testActor(), collaborationID, service.DecisionAccept).
			Return(nil, apperrors.ErrCollaborationNotPending)

		body, _ := json.Marshal(handlers.RespondRequest{Decision: service.DecisionAccept})
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/collaborations/%s/respond", collaborationID), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp handlers.ActionResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
	})
}

// TestCancel tests the Cancel handler
func (suite *CollaborationHandlerTestSuite) TestCancel() {
	collaborationID := uuid.New()

	suite.T().Run("Successful cancel", func(t *testing.T) {
		suite.mockService.EXPECT().
			Cancel(testActor(), collaborationID).
			Return(nil)

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/collaborations/%s", collaborationID), nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	suite.T().Run("Not the requester", func(t *testing.T) {
		suite.mockService.EXPECT().
			Cancel(testActor(), collaborationID).
			Return(apperrors.ErrNotRequester)

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/collaborations/%s", collaborationID), nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().
			Cancel(testActor(), collaborationID).
			Return(apperrors.ErrCollaborationNotFound)

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/collaborations/%s", collaborationID), nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestLists tests the list handlers
func (suite *CollaborationHandlerTestSuite) TestLists() {
	suite.T().Run("Pending requests", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListRequests(testActor(), 2, 10).
			Return(&service.CollaborationListResponse{Total: 0, Page: 2, PageSize: 10}, nil)

		req := httptest.NewRequest(http.MethodGet, "/collaborations/requests?page=2&page_size=10", nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	suite.T().Run("Sent requests use defaults", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListSent(testActor(), 1, 20).
			Return(&service.CollaborationListResponse{Total: 1, Page: 1, PageSize: 20}, nil)

		req := httptest.NewRequest(http.MethodGet, "/collaborations/sent", nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	suite.T().Run("Active collaborations", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListActive(testActor(), 1, 20).
			Return(&service.CollaborationListResponse{Total: 2, Page: 1, PageSize: 20}, nil)

		req := httptest.NewRequest(http.MethodGet, "/collaborations/active", nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

// TestCollaborationHandlerTestSuite runs the test suite
func TestCollaborationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CollaborationHandlerTestSuite))
}
