package models

// UserRole defines the roles a portal user can hold
type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleStaff   UserRole = "staff"
	UserRoleAdmin   UserRole = "admin"
)

// UserStatus defines the account lifecycle states
type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusActive   UserStatus = "active"
	UserStatusRejected UserStatus = "rejected"
)

// VoteType defines the two mutually exclusive vote directions
type VoteType string

const (
	VoteTypeUpvote   VoteType = "upvote"
	VoteTypeDownvote VoteType = "downvote"
)

// CollaborationStatus defines the collaboration request lifecycle states
type CollaborationStatus string

const (
	CollaborationStatusPending  CollaborationStatus = "pending"
	CollaborationStatusAccepted CollaborationStatus = "accepted"
	CollaborationStatusRejected CollaborationStatus = "rejected"
)

// NotificationType defines the kinds of notifications the portal creates
type NotificationType string

const (
	NotificationTypeCollaborationRequest  NotificationType = "collaboration_request"
	NotificationTypeCollaborationResponse NotificationType = "collaboration_response"
	NotificationTypeProjectApproval       NotificationType = "project_approval"
	NotificationTypePasswordReset         NotificationType = "password_reset"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleStudent, UserRoleStaff, UserRoleAdmin:
		return true
	}
	return false
}

// IsValid checks if the UserStatus is valid
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusPending, UserStatusActive, UserStatusRejected:
		return true
	}
	return false
}

// IsValid checks if the VoteType is valid
func (v VoteType) IsValid() bool {
	switch v {
	case VoteTypeUpvote, VoteTypeDownvote:
		return true
	}
	return false
}

// IsValid checks if the CollaborationStatus is valid
func (s CollaborationStatus) IsValid() bool {
	switch s {
	case CollaborationStatusPending, CollaborationStatusAccepted, CollaborationStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status is a responded, final state
func (s CollaborationStatus) IsTerminal() bool {
	return s == CollaborationStatusAccepted || s == CollaborationStatusRejected
}

// IsValid checks if the NotificationType is valid
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeCollaborationRequest, NotificationTypeCollaborationResponse,
		NotificationTypeProjectApproval, NotificationTypePasswordReset:
		return true
	}
	return false
}
