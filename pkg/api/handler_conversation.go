package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// createConversationHandler handles POST /api/v1/spaces/:id/conversations.
func (s *Server) createConversationHandler(c *gin.Context) {
	conv, err := s.conversations.CreateConversation(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conv)
}

// getConversationHandler handles GET /api/v1/conversations/:id.
func (s *Server) getConversationHandler(c *gin.Context) {
	conv, err := s.conversations.GetConversation(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

// listMessagesHandler handles GET /api/v1/conversations/:id/messages.
func (s *Server) listMessagesHandler(c *gin.Context) {
	msgs, err := s.messages.GetConversationMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// branchHandler handles POST /api/v1/conversations/:id/branch. The branch
// shares text content with the parent via refcounts; edits copy on write.
func (s *Server) branchHandler(c *gin.Context) {
	var req BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	branch, err := s.conversations.Branch(c.Request.Context(), c.Param("id"), req.ForkMessageID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, branch)
}

// editMessageHandler handles PATCH /api/v1/messages/:id.
func (s *Server) editMessageHandler(c *gin.Context) {
	var req EditMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := s.conversations.EditMessageContent(c.Request.Context(), c.Param("id"), req.Content); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteMessageHandler handles DELETE /api/v1/messages/:id.
func (s *Server) deleteMessageHandler(c *gin.Context) {
	if err := s.conversations.DeleteMessage(c.Request.Context(), c.Param("id")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
