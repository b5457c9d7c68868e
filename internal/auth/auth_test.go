package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-showcase-backend/internal/config"
	"project-showcase-backend/internal/database/models"
)

const testSecret = "test-secret"

func newTestService() *Service {
	return NewService(&config.Config{JWTSecret: testSecret})
}

func signToken(t *testing.T, claims SessionClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims(role string) SessionClaims {
	return SessionClaims{
		UserID:   uuid.New().String(),
		Username: "alice",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestValidateToken(t *testing.T) {
	service := newTestService()

	t.Run("valid token", func(t *testing.T) {
		claims := validClaims("student")
		actor, err := service.ValidateToken(signToken(t, claims, testSecret))
		require.NoError(t, err)
		assert.Equal(t, claims.UserID, actor.UserID.String())
		assert.Equal(t, "alice", actor.Username)
		assert.Equal(t, models.UserRoleStudent, actor.Role)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := service.ValidateToken(signToken(t, validClaims("student"), "other-secret"))
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := validClaims("student")
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
		_, err := service.ValidateToken(signToken(t, claims, testSecret))
		assert.Error(t, err)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := service.ValidateToken(signToken(t, validClaims("superuser"), testSecret))
		assert.Error(t, err)
	})

	t.Run("malformed user id", func(t *testing.T) {
		claims := validClaims("student")
		claims.UserID = "not-a-uuid"
		_, err := service.ValidateToken(signToken(t, claims, testSecret))
		assert.Error(t, err)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := newTestService()
	middleware := NewMiddleware(service)

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"success": true, "user_id": actor.UserID.String()})
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims("staff"), testSecret))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := newTestService()
	middleware := NewMiddleware(service)

	router := gin.New()
	router.GET("/admin", middleware.RequireAuth(), middleware.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	t.Run("student is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims("student"), testSecret))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin is allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims("admin"), testSecret))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
