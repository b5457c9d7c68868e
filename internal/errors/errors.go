package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this project"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// BusinessError represents an expected business-rule failure that should be
// reported to the user as a displayable message rather than an HTTP error
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound          = &NotFoundError{Entity: "user"}
	ErrProjectNotFound       = &NotFoundError{Entity: "project"}
	ErrCollaborationNotFound = &NotFoundError{Entity: "collaboration request"}
	ErrNotificationNotFound  = &NotFoundError{Entity: "notification"}
	ErrCommentNotFound       = &NotFoundError{Entity: "comment"}
)

// Already Exists Errors
var (
	ErrCollaborationExists = &AlreadyExistsError{Entity: "collaboration request", Context: "for this project and user"}
)

// Business Logic Errors
var (
	ErrOwnProjectCollaboration = &BusinessError{Message: "you cannot request collaboration on your own project"}
	ErrProjectNotActive        = &BusinessError{Message: "project is not active"}
	ErrCollaborationNotPending = &BusinessError{Message: "collaboration request has already been responded to"}
	ErrUserNotActive           = &BusinessError{Message: "user account is not active"}
	ErrTooManyCollaborators    = &BusinessError{Message: "a project can invite at most 5 collaborators"}
	ErrInvalidVoteType         = &BusinessError{Message: "vote type must be upvote or downvote"}
	ErrInvalidResponse         = &BusinessError{Message: "response must be accept or reject"}
)

// Authorization Errors
var (
	ErrNotProjectOwner       = &AuthorizationError{Message: "only the project owner may perform this action"}
	ErrNotCollaborationParty = &AuthorizationError{Message: "only the project owner or the invited user may respond to this request"}
	ErrNotRequester          = &AuthorizationError{Message: "only the requester may cancel a collaboration request"}
	ErrNotAddressee          = &AuthorizationError{Message: "notification does not belong to this user"}
	ErrNotCommentAuthor      = &AuthorizationError{Message: "only the comment author may perform this action"}
	ErrAdminRequired         = &AuthorizationError{Message: "admin privileges required"}
	ErrNotAuthenticated      = &AuthenticationError{Message: "authentication required"}
	ErrInvalidToken          = &AuthenticationError{Message: "invalid or expired token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsBusiness checks if an error is a BusinessError
func IsBusiness(err error) bool {
	var bizErr *BusinessError
	return errors.As(err, &bizErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
