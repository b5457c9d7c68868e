package handlers

import (
	"net/http"

	"project-showcase-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CollaborationHandler handles HTTP requests for the collaboration lifecycle
type CollaborationHandler struct {
	collaborations service.Collaborations
}

// NewCollaborationHandler creates a new collaboration handler
func NewCollaborationHandler(collaborations service.Collaborations) *CollaborationHandler {
	return &CollaborationHandler{
		collaborations: collaborations,
	}
}

// InviteRequest represents the owner-side invite request body
type InviteRequest struct {
	Username string `json:"username" binding:"required"`
}

// RespondRequest represents the owner's decision on a pending request
type RespondRequest struct {
	Decision service.CollaborationDecision `json:"decision" binding:"required"`
}

// Request handles POST /projects/:id/collaborations
// @Summary Request collaboration on a project
// @Description Create a pending collaboration request from the caller to the project owner
// @Tags collaborations
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 201 {object} service.CollaborationResponse "Created request"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/collaborations [post]
func (h *CollaborationHandler) Request(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	collaboration, err := h.collaborations.Request(actor, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, collaboration)
}

// Invite handles POST /projects/:id/collaborations/invite
// @Summary Invite a user to collaborate
// @Description Create a pending collaboration request for another user on the caller's own project
// @Tags collaborations
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param invite body InviteRequest true "Invitee username"
// @Success 201 {object} service.CollaborationResponse "Created invite"
// @Failure 400 {object} ErrorResponse "Invalid project ID or request body"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Not the project owner"
// @Failure 404 {object} ErrorResponse "Project or user not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/collaborations/invite [post]
func (h *CollaborationHandler) Invite(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	collaboration, err := h.collaborations.Invite(actor, projectID, req.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, collaboration)
}

// Respond handles POST /collaborations/:id/respond
// @Summary Respond to a collaboration request
// @Description Accept or reject a pending request on a project the caller owns. Both outcomes are kept as terminal records.
// @Tags collaborations
// @Accept json
// @Produce json
// @Param id path string true "Collaboration ID (UUID)"
// @Param response body RespondRequest true "Decision: accept or reject"
// @Success 200 {object} service.CollaborationResponse "Updated request"
// @Failure 400 {object} ErrorResponse "Invalid collaboration ID or request body"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Not the project owner"
// @Failure 404 {object} ErrorResponse "Collaboration request not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /collaborations/{id}/respond [post]
func (h *CollaborationHandler) Respond(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	collaborationID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	collaboration, err := h.collaborations.Respond(actor, collaborationID, req.Decision)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, collaboration)
}

// Cancel handles DELETE /collaborations/:id
// @Summary Cancel a pending collaboration request
// @Description Delete a pending request the caller made. Responded requests cannot be cancelled.
// @Tags collaborations
// @Accept json
// @Produce json
// @Param id path string true "Collaboration ID (UUID)"
// @Success 200 {object} ActionResponse "Request cancelled"
// @Failure 400 {object} ErrorResponse "Invalid collaboration ID"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Not the requester"
// @Failure 404 {object} ErrorResponse "Collaboration request not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /collaborations/{id} [delete]
func (h *CollaborationHandler) Cancel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	collaborationID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.collaborations.Cancel(actor, collaborationID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ActionResponse{Success: true, Message: "collaboration request cancelled"})
}

// AdminRespond handles POST /admin/collaborations/:id/respond
// @Summary Respond to any collaboration request (admin)
// @Description Accept or reject a pending request regardless of project ownership
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Collaboration ID (UUID)"
// @Param response body RespondRequest true "Decision: accept or reject"
// @Success 200 {object} service.CollaborationResponse "Updated request"
// @Failure 400 {object} ErrorResponse "Invalid collaboration ID or request body"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 404 {object} ErrorResponse "Collaboration request not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/collaborations/{id}/respond [post]
func (h *CollaborationHandler) AdminRespond(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	collaborationID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	collaboration, err := h.collaborations.AdminRespond(actor, collaborationID, req.Decision)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, collaboration)
}

// AdminRemove handles DELETE /admin/collaborations/:id
// @Summary Remove a collaboration record (admin)
// @Description Delete a collaboration row regardless of its status
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Collaboration ID (UUID)"
// @Success 200 {object} ActionResponse "Record removed"
// @Failure 400 {object} ErrorResponse "Invalid collaboration ID"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 404 {object} ErrorResponse "Collaboration request not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/collaborations/{id} [delete]
func (h *CollaborationHandler) AdminRemove(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	collaborationID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.collaborations.AdminRemove(actor, collaborationID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ActionResponse{Success: true, Message: "collaboration removed"})
}

// ListRequests handles GET /collaborations/requests
// @Summary List pending requests on the caller's projects
// @Tags collaborations
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.CollaborationListResponse "Pending requests"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /collaborations/requests [get]
func (h *CollaborationHandler) ListRequests(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	list, err := h.collaborations.ListRequests(actor, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// ListSent handles GET /collaborations/sent
// @Summary List requests the caller has made
// @Tags collaborations
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.CollaborationListResponse "Sent requests"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /collaborations/sent [get]
func (h *CollaborationHandler) ListSent(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	list, err := h.collaborations.ListSent(actor, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// ListActive handles GET /collaborations/active
// @Summary List accepted collaborations involving the caller
// @Tags collaborations
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.CollaborationListResponse "Active collaborations"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /collaborations/active [get]
func (h *CollaborationHandler) ListActive(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	list, err := h.collaborations.ListActive(actor, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
