package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talkwheel/talkwheel/ent/spacemembership"
	"github.com/talkwheel/talkwheel/pkg/models"
)

// createSpaceHandler handles POST /api/v1/spaces.
func (s *Server) createSpaceHandler(c *gin.Context) {
	var req CreateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	sp, err := s.spaces.CreateSpace(c.Request.Context(), models.CreateSpaceRequest{
		Name:               req.Name,
		ReplyOrder:         req.ReplyOrder,
		AllowSelfResponses: req.AllowSelfResponses,
		InputPolicy:        req.InputPolicy,
		UserTurnDebounceMs: req.UserTurnDebounceMs,
		RelaxMessageTrim:   req.RelaxMessageTrim,
		TokenLimit:         req.TokenLimit,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sp)
}

// getSpaceHandler handles GET /api/v1/spaces/:id.
func (s *Server) getSpaceHandler(c *gin.Context) {
	sp, err := s.spaces.GetSpace(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

// addMembershipHandler handles POST /api/v1/spaces/:id/memberships.
func (s *Server) addMembershipHandler(c *gin.Context) {
	var req AddMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	m, err := s.spaces.AddMembership(c.Request.Context(), models.AddMembershipRequest{
		SpaceID:       c.Param("id"),
		Kind:          req.Kind,
		DisplayName:   req.DisplayName,
		AvatarURL:     req.AvatarURL,
		Position:      req.Position,
		Talkativeness: req.Talkativeness,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// setParticipationHandler handles PATCH /api/v1/memberships/:id/participation.
func (s *Server) setParticipationHandler(c *gin.Context) {
	var req SetParticipationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	err := s.spaces.SetParticipation(c.Request.Context(), c.Param("id"),
		spacemembership.Participation(req.Participation))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// setCopilotModeHandler handles POST /api/v1/memberships/:id/copilot.
func (s *Server) setCopilotModeHandler(c *gin.Context) {
	var req SetCopilotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	err := s.spaces.SetCopilotMode(c.Request.Context(), c.Param("id"),
		spacemembership.CopilotMode(req.Mode), req.Steps)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// removeMembershipHandler handles DELETE /api/v1/memberships/:id.
func (s *Server) removeMembershipHandler(c *gin.Context) {
	if err := s.spaces.RemoveMembership(c.Request.Context(), c.Param("id")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
