package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"project-showcase-backend/internal/auth"
	apperrors "project-showcase-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// ActionResponse is the envelope for state-changing operations. Business-rule
// refusals come back as HTTP 200 with success=false and a displayable message
// so the frontend renders them inline instead of as transport failures.
type ActionResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// respondError maps the service error taxonomy onto HTTP:
// authentication 401, validation 400, authorization 403, not-found 404,
// business refusals 200/success=false, everything else 500.
func respondError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors

	switch {
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsValidation(err), errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsBusiness(err), apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusOK, ActionResponse{Success: false, Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

// requireActor pulls the authenticated caller placed by the auth middleware.
// Routes are registered behind RequireAuth, so a miss means a wiring bug;
// respond 401 rather than panic.
func requireActor(c *gin.Context) (auth.Actor, bool) {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrNotAuthenticated.Error()})
		return auth.Actor{}, false
	}
	return actor, true
}

// parseUUIDParam parses a :param path segment as a UUID
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	parsed, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return uuid.Nil, false
	}
	return parsed, true
}

// pagination reads page/page_size query params with service-side defaults
func pagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}
