package handlers

import (
	"net/http"

	"project-showcase-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for notifications
type NotificationHandler struct {
	notifications service.Notifications
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notifications service.Notifications) *NotificationHandler {
	return &NotificationHandler{
		notifications: notifications,
	}
}

// List handles GET /notifications
// @Summary List the caller's notifications
// @Tags notifications
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.NotificationListResponse "Notifications, newest first"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	list, err := h.notifications.List(actor, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// UnreadCount handles GET /notifications/unread-count
// @Summary Count the caller's unread notifications
// @Tags notifications
// @Accept json
// @Produce json
// @Success 200 {object} map[string]int64 "Unread count"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	count, err := h.notifications.UnreadCount(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

// MarkRead handles PUT /notifications/:id/read
// @Summary Mark a notification as read
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} ActionResponse "Marked read"
// @Failure 400 {object} ErrorResponse "Invalid notification ID"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Notification belongs to another user"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.notifications.MarkRead(actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ActionResponse{Success: true, Message: "notification marked as read"})
}

// MarkAllRead handles PUT /notifications/read-all
// @Summary Mark all of the caller's notifications as read
// @Tags notifications
// @Accept json
// @Produce json
// @Success 200 {object} ActionResponse "All marked read"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.notifications.MarkAllRead(actor); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ActionResponse{Success: true, Message: "all notifications marked as read"})
}

// Delete handles DELETE /notifications/:id
// @Summary Delete a notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} ActionResponse "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid notification ID"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Notification belongs to another user"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.notifications.Delete(actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ActionResponse{Success: true, Message: "notification deleted"})
}

// ListAll handles GET /admin/notifications
// @Summary List notifications across all users (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.NotificationListResponse "All notifications"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/notifications [get]
func (h *NotificationHandler) ListAll(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	list, err := h.notifications.ListAll(actor, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
