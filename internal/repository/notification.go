package repository

import (
	"time"

	"project-showcase-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *NotificationRepository) WithTx(tx *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: tx}
}

// Create creates a new notification
func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// GetByID retrieves a notification by ID
func (r *NotificationRepository) GetByID(id uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// ListByUser retrieves a user's notifications, newest first
func (r *NotificationRepository) ListByUser(userID uuid.UUID, limit, offset int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	query := r.db.Model(&models.Notification{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// ListAll retrieves notifications across all users, newest first
func (r *NotificationRepository) ListAll(limit, offset int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	if err := r.db.Model(&models.Notification{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// CountUnread returns the number of unread notifications for a user
func (r *NotificationRepository) CountUnread(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkRead marks a single notification as read
func (r *NotificationRepository) MarkRead(id uuid.UUID) error {
	now := time.Now()
	return r.db.Model(&models.Notification{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_read": true,
		"read_at": &now,
	}).Error
}

// MarkAllRead marks all of a user's unread notifications as read
func (r *NotificationRepository) MarkAllRead(userID uuid.UUID) error {
	now := time.Now()
	return r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": &now,
		}).Error
}

// Delete removes a notification
func (r *NotificationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Notification{}, "id = ?", id).Error
}

// DeleteByRelatedID removes all notifications referencing an entity, used by
// the project cascade delete
func (r *NotificationRepository) DeleteByRelatedID(relatedID uuid.UUID) error {
	return r.db.Delete(&models.Notification{}, "related_id = ?", relatedID).Error
}

// BroadcastToRoles creates one notification per active user holding any of
// the given roles. A single INSERT ... SELECT keeps the fan-out atomic.
func (r *NotificationRepository) BroadcastToRoles(roles []models.UserRole, notificationType models.NotificationType, title, message string, relatedID *uuid.UUID) error {
	return r.db.Exec(`
		INSERT INTO notifications (id, created_at, updated_at, user_id, type, title, message, related_id, is_read)
		SELECT gen_random_uuid(), NOW(), NOW(), u.id, ?, ?, ?, ?, FALSE
		FROM users u
		WHERE u.role IN ? AND u.status = ?
	`, notificationType, title, message, relatedID, roles, models.UserStatusActive).Error
}
