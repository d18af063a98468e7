package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duynguyendang/gitguide/pkg/common/errors"
)

// chatRequest is the /chat payload. use_realtime defaults to true when
// omitted.
type chatRequest struct {
	ConversationID string `json:"conversation_id" binding:"required"`
	Question       string `json:"question" binding:"required"`
	UseRealtime    *bool  `json:"use_realtime"`
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "version": "1.0"})
}

func (s *Server) startConversation(c *gin.Context) {
	sess, err := s.sessions.Create(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"conversation_id": sess.ID(),
		"message":         "Conversation started successfully",
	})
}

func (s *Server) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, errors.NewAppError(http.StatusBadRequest, "Invalid request body", err))
		return
	}

	sess, err := s.sessions.Get(req.ConversationID)
	if err != nil {
		handleError(c, err)
		return
	}

	useRealtime := true
	if req.UseRealtime != nil {
		useRealtime = *req.UseRealtime
	}

	// The responder guarantees a string answer; pipeline failures surface as
	// its fallback text, not as an HTTP error.
	answer := s.responder.Respond(c.Request.Context(), sess, req.Question, useRealtime)

	c.JSON(http.StatusOK, gin.H{
		"response":        answer,
		"conversation_id": req.ConversationID,
	})
}

func (s *Server) resetConversation(c *gin.Context) {
	if err := s.sessions.Reset(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation reset successfully"})
}

func (s *Server) deleteConversation(c *gin.Context) {
	s.sessions.Remove(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Conversation deleted successfully"})
}

func handleError(c *gin.Context, err error) {
	appErr := errors.MapError(err)
	log.Printf("server: %v", appErr)
	c.JSON(appErr.Code, gin.H{"error": appErr.Message})
}
