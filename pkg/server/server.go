// Package server exposes the assistant over a REST API.
package server

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/duynguyendang/gitguide/internal/session"
)

// Responder answers one question within a conversation.
type Responder interface {
	Respond(ctx context.Context, sess *session.Session, question string, useRealtime bool) string
}

// Server holds the state for the REST API server.
type Server struct {
	sessions  *session.Manager
	responder Responder
	router    *gin.Engine
}

// NewServer creates a new Server instance.
func NewServer(sessions *session.Manager, responder Responder) *Server {
	r := gin.Default()
	s := &Server{
		sessions:  sessions,
		responder: responder,
		router:    r,
	}
	s.setupRoutes()
	return s
}

// Run starts the server on the specified address.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) setupRoutes() {
	s.router.GET("/api/health", s.healthCheck)
	s.router.POST("/start-conversation", s.startConversation)
	s.router.POST("/chat", s.chat)
	s.router.POST("/reset-conversation/:id", s.resetConversation)
	s.router.DELETE("/conversation/:id", s.deleteConversation)
}
