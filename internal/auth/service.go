package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"project-showcase-backend/internal/config"
	"project-showcase-backend/internal/database/models"
	apperrors "project-showcase-backend/internal/errors"
)

// SessionClaims represents the JWT claims issued by the external auth system
type SessionClaims struct {
	UserID   string `json:"user_id" example:"7d3b7e6a-0b2a-4a7e-bb1e-0e2f3d4c5b6a"`
	Username string `json:"username" example:"alice"`
	Role     string `json:"role" example:"student"`
	jwt.RegisteredClaims
}

// Service validates externally issued session tokens
type Service struct {
	config *config.Config
}

// NewService creates a new auth service
func NewService(cfg *config.Config) *Service {
	return &Service{config: cfg}
}

// ValidateToken parses and verifies a session token and returns the Actor it
// describes. The token is trusted verbatim once the signature checks out;
// identity management is the external auth system's job.
func (s *Service) ValidateToken(tokenString string) (*Actor, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in token: %w", err)
	}

	role := models.UserRole(claims.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role in token: %q", claims.Role)
	}

	return &Actor{
		UserID:   userID,
		Username: claims.Username,
		Role:     role,
	}, nil
}
