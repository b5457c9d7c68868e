package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"project-showcase-backend/internal/api/handlers"
	apperrors "project-showcase-backend/internal/errors"
	"project-showcase-backend/internal/mocks"
	"project-showcase-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// NotificationHandlerTestSuite defines the test suite for NotificationHandler
type NotificationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockNotifications
	handler     *handlers.NotificationHandler
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *NotificationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockNotifications(suite.ctrl)
	suite.handler = handlers.NewNotificationHandler(suite.mockService)
	suite.router = gin.New()
	suite.router.Use(withActor(testActor()))
	suite.setupRoutes()
}

// TearDownTest cleans up after each test
func (suite *NotificationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NotificationHandlerTestSuite) setupRoutes() {
	suite.router.GET("/notifications", suite.handler.List)
	suite.router.GET("/notifications/unread-count", suite.handler.UnreadCount)
	suite.router.PUT("/notifications/read-all", suite.handler.MarkAllRead)
	suite.router.PUT("/notifications/:id/read", suite.handler.MarkRead)
	suite.router.DELETE("/notifications/:id", suite.handler.Delete)
	suite.router.GET("/admin/notifications", suite.handler.ListAll)
}

// TestList tests the List handler
func (suite *NotificationHandlerTestSuite) TestList() {
	suite.T().Run("Successful list", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(testActor(), 1, 20).
			Return(&service.NotificationListResponse{
				Notifications: []service.NotificationResponse{{ID: uuid.New(), Title: "New collaboration request"}},
				Total:         1,
				Page:          1,
				PageSize:      20,
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp service.NotificationListResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Notifications, 1)
	})
}

// TestUnreadCount tests the UnreadCount handler
func (suite *NotificationHandlerTestSuite) TestUnreadCount() {
	suite.mockService.EXPECT().
		UnreadCount(testActor()).
		Return(int64(4), nil)

	req := httptest.NewRequest(http.MethodGet, "/notifications/unread-count", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"unread_count":4`)
}

// TestMarkRead tests the MarkRead handler
func (suite *NotificationHandlerTestSuite) TestMarkRead() {
	notificationID := uuid.New()

	suite.T().Run("Successful mark read", func(t *testing.T) {
		suite.mockService.EXPECT().
			MarkRead(testActor(), notificationID).
			Return(nil)

		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/notifications/%s/read", notificationID), nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	suite.T().Run("Someone else's notification", func(t *testing.T) {
		suite.mockService.EXPECT().
			MarkRead(testActor(), notificationID).
			Return(apperrors.ErrNotAddressee)

		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/notifications/%s/read", notificationID), nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().
			MarkRead(testActor(), notificationID).
			Return(apperrors.ErrNotificationNotFound)

		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/notifications/%s/read", notificationID), nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	suite.T().Run("Invalid UUID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/notifications/not-a-uuid/read", nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestMarkAllRead tests the MarkAllRead handler
func (suite *NotificationHandlerTestSuite) TestMarkAllRead() {
	suite.mockService.EXPECT().
		MarkAllRead(testActor()).
		Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/notifications/read-all", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

// TestDelete tests the Delete handler
func (suite *NotificationHandlerTestSuite) TestDelete() {
	notificationID := uuid.New()

	suite.mockService.EXPECT().
		Delete(testActor(), notificationID).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/notifications/%s", notificationID), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

// TestListAll tests the admin ListAll handler
func (suite *NotificationHandlerTestSuite) TestListAll() {
	suite.T().Run("Non-admin is refused by the service", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListAll(testActor(), 1, 20).
			Return(nil, apperrors.ErrAdminRequired)

		req := httptest.NewRequest(http.MethodGet, "/admin/notifications", nil)
		w := httptest.NewRecorder()

		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

// TestNotificationHandlerTestSuite runs the test suite
func TestNotificationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}
