// Package mcp exposes the assistant's conversation operations over the Model
// Context Protocol, as an alternative to the REST surface.
package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/duynguyendang/gitguide/internal/session"
	"github.com/duynguyendang/gitguide/pkg/assist"
)

// MCPServer wraps the session manager and responder to serve MCP tools.
type MCPServer struct {
	sessions  *session.Manager
	responder *assist.Responder
}

// Run starts the MCP server on Stdio.
func Run(ctx context.Context, sessions *session.Manager, responder *assist.Responder) error {
	s := server.NewMCPServer(
		"GitGuide",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithLogging(),
	)

	ms := &MCPServer{sessions: sessions, responder: responder}

	s.AddTool(
		mcp.NewTool(
			"start_conversation",
			mcp.WithDescription("Start a new conversation and return its id."),
		),
		ms.handleStartConversation,
	)

	s.AddTool(
		mcp.NewTool(
			"ask",
			mcp.WithDescription("Ask a question within a conversation. Returns the assistant's answer."),
			mcp.WithString("conversation_id", mcp.Required(), mcp.Description("The conversation id")),
			mcp.WithString("question", mcp.Required(), mcp.Description("The user's question")),
			mcp.WithBoolean("use_realtime", mcp.Description("Include retrieved knowledge snippets (default true)")),
		),
		ms.handleAsk,
	)

	s.AddTool(
		mcp.NewTool(
			"reset_conversation",
			mcp.WithDescription("Reset a conversation, discarding its preferences and history but keeping the id."),
			mcp.WithString("conversation_id", mcp.Required(), mcp.Description("The conversation id")),
		),
		ms.handleResetConversation,
	)

	s.AddTool(
		mcp.NewTool(
			"delete_conversation",
			mcp.WithDescription("Delete a conversation entirely."),
			mcp.WithString("conversation_id", mcp.Required(), mcp.Description("The conversation id")),
		),
		ms.handleDeleteConversation,
	)

	slog.Info("Starting MCP server on Stdio")
	return server.ServeStdio(s)
}

func (ms *MCPServer) handleStartConversation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := ms.sessions.Create(ctx)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("failed to start conversation", err), nil
	}
	return mcp.NewToolResultText(sess.ID()), nil
}

func (ms *MCPServer) handleAsk(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	id, ok := args["conversation_id"].(string)
	if !ok {
		return mcp.NewToolResultError("conversation_id argument required"), nil
	}
	question, ok := args["question"].(string)
	if !ok {
		return mcp.NewToolResultError("question argument required"), nil
	}
	useRealtime := true
	if v, ok := args["use_realtime"].(bool); ok {
		useRealtime = v
	}

	sess, err := ms.sessions.Get(id)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("conversation not found", err), nil
	}

	return mcp.NewToolResultText(ms.responder.Respond(ctx, sess, question, useRealtime)), nil
}

func (ms *MCPServer) handleResetConversation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, ok := request.GetArguments()["conversation_id"].(string)
	if !ok {
		return mcp.NewToolResultError("conversation_id argument required"), nil
	}
	if err := ms.sessions.Reset(ctx, id); err != nil {
		return mcp.NewToolResultErrorFromErr("reset failed", err), nil
	}
	return mcp.NewToolResultText("Conversation reset successfully"), nil
}

func (ms *MCPServer) handleDeleteConversation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, ok := request.GetArguments()["conversation_id"].(string)
	if !ok {
		return mcp.NewToolResultError("conversation_id argument required"), nil
	}
	ms.sessions.Remove(id)
	return mcp.NewToolResultText("Conversation deleted successfully"), nil
}
