package service

import (
	"errors"
	"fmt"
	"time"

	"project-showcase-backend/internal/auth"
	"project-showcase-backend/internal/database/models"
	apperrors "project-showcase-backend/internal/errors"
	"project-showcase-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NotificationService exposes the addressee-scoped notification operations.
// Rows are only ever created by other services' state transitions; this
// service reads and mutates the read/unread lifecycle.
type NotificationService struct {
	notificationRepo *repository.NotificationRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID        uuid.UUID               `json:"id"`
	Type      models.NotificationType `json:"type"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	RelatedID *uuid.UUID              `json:"related_id,omitempty"`
	Data      datatypes.JSON          `json:"data,omitempty"`
	IsRead    bool                    `json:"is_read"`
	ReadAt    *time.Time              `json:"read_at,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

// NotificationListResponse represents a paginated list of notifications
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// List returns the actor's notifications, newest first
func (s *NotificationService) List(actor auth.Actor, page, pageSize int) (*NotificationListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	notifications, total, err := s.notificationRepo.ListByUser(actor.UserID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return toNotificationList(notifications, total, page, pageSize), nil
}

// ListAll returns notifications across all users. Admin only.
func (s *NotificationService) ListAll(actor auth.Actor, page, pageSize int) (*NotificationListResponse, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrAdminRequired
	}
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	notifications, total, err := s.notificationRepo.ListAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return toNotificationList(notifications, total, page, pageSize), nil
}

// UnreadCount returns the number of unread notifications for the actor
func (s *NotificationService) UnreadCount(actor auth.Actor) (int64, error) {
	count, err := s.notificationRepo.CountUnread(actor.UserID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead marks one notification as read. Addressee only (admins included
// for moderation).
func (s *NotificationService) MarkRead(actor auth.Actor, id uuid.UUID) error {
	notification, err := s.notificationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to load notification: %w", err)
	}
	if notification.UserID != actor.UserID && !actor.IsAdmin() {
		return apperrors.ErrNotAddressee
	}

	if err := s.notificationRepo.MarkRead(id); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead marks all of the actor's notifications as read
func (s *NotificationService) MarkAllRead(actor auth.Actor) error {
	if err := s.notificationRepo.MarkAllRead(actor.UserID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

// Delete removes one notification. Addressee only (admins included).
func (s *NotificationService) Delete(actor auth.Actor, id uuid.UUID) error {
	notification, err := s.notificationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to load notification: %w", err)
	}
	if notification.UserID != actor.UserID && !actor.IsAdmin() {
		return apperrors.ErrNotAddressee
	}

	if err := s.notificationRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}

func toNotificationList(notifications []models.Notification, total int64, page, pageSize int) *NotificationListResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			RelatedID: n.RelatedID,
			Data:      n.Data,
			IsRead:    n.IsRead,
			ReadAt:    n.ReadAt,
			CreatedAt: n.CreatedAt,
		}
	}
	return &NotificationListResponse{
		Notifications: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}
}
