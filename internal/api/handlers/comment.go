package handlers

import (
	"net/http"

	"project-showcase-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CommentHandler handles HTTP requests for project comments
type CommentHandler struct {
	comments service.Comments
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(comments service.Comments) *CommentHandler {
	return &CommentHandler{
		comments: comments,
	}
}

// CreateComment handles POST /projects/:id/comments
// @Summary Comment on a project
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param comment body service.CreateCommentRequest true "Comment body"
// @Success 201 {object} service.CommentResponse "Created comment"
// @Failure 400 {object} ErrorResponse "Invalid project ID or request body"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	comment, err := h.comments.Create(actor, projectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListComments handles GET /projects/:id/comments
// @Summary List a project's comments
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.CommentListResponse "Comments, newest first"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	list, err := h.comments.List(projectID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// DeleteComment handles DELETE /comments/:id
// @Summary Delete a comment
// @Description Delete a comment. Author or admin only.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID (UUID)"
// @Success 200 {object} ActionResponse "Comment deleted"
// @Failure 400 {object} ErrorResponse "Invalid comment ID"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Not the comment author"
// @Failure 404 {object} ErrorResponse "Comment not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.comments.Delete(actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ActionResponse{Success: true, Message: "comment deleted"})
}
