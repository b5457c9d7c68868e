package auth

import (
	"github.com/google/uuid"

	"project-showcase-backend/internal/database/models"
)

// Actor is the authenticated caller, passed explicitly into every service
// operation. Services never read identity from ambient state.
type Actor struct {
	UserID   uuid.UUID
	Username string
	Role     models.UserRole
}

// IsAdmin reports whether the actor holds the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == models.UserRoleAdmin
}
