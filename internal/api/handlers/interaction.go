package handlers

import (
	"net/http"

	"project-showcase-backend/internal/database/models"
	"project-showcase-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InteractionHandler handles HTTP requests for votes, stars and stats
type InteractionHandler struct {
	interactions service.Interactions
}

// NewInteractionHandler creates a new interaction handler
func NewInteractionHandler(interactions service.Interactions) *InteractionHandler {
	return &InteractionHandler{
		interactions: interactions,
	}
}

// VoteRequest represents the vote toggle request body
type VoteRequest struct {
	VoteType models.VoteType `json:"vote_type" binding:"required"`
}

// Vote handles POST /projects/:id/vote
// @Summary Toggle a vote on a project
// @Description Cast, remove or switch the caller's vote. Voting the same direction twice removes the vote; voting the opposite direction switches it.
// @Tags interactions
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param vote body VoteRequest true "Vote direction"
// @Success 200 {object} ActionResponse "Toggle outcome with the new count"
// @Failure 400 {object} ErrorResponse "Invalid project ID or request body"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/vote [post]
func (h *InteractionHandler) Vote(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.interactions.Vote(actor, projectID, req.VoteType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ActionResponse{Success: true, Data: result})
}

// Star handles POST /projects/:id/star
// @Summary Star a project
// @Description Add the caller's star to a project. Idempotent.
// @Tags interactions
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} ActionResponse "Star outcome with the new count"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/star [post]
func (h *InteractionHandler) Star(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.interactions.Star(actor, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ActionResponse{Success: true, Data: result})
}

// Unstar handles DELETE /projects/:id/star
// @Summary Remove a star from a project
// @Description Remove the caller's star. A no-op when no star exists.
// @Tags interactions
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} ActionResponse "Unstar outcome with the new count"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/star [delete]
func (h *InteractionHandler) Unstar(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.interactions.Unstar(actor, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ActionResponse{Success: true, Data: result})
}

// Stats handles GET /projects/:id/stats
// @Summary Get project interaction stats
// @Description Get vote, star and comment counts for a project together with the caller's own interaction state
// @Tags interactions
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ProjectStats "Interaction aggregate"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/stats [get]
func (h *InteractionHandler) Stats(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	stats, err := h.interactions.GetStats(actor, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
