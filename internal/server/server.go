// Package server is the composition root: it creates the MCP server
// and registers every tool and resource. No business logic lives here,
// only wiring.
package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/mpalmer/claude-scribe/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

const instructions = "claude-scribe archives conversation transcripts as " +
	"timestamped markdown files under a year/month directory tree. Use " +
	"save_current_session before compacting context to preserve the full " +
	"conversation, including extended thinking and tool calls."

// New creates the MCP server with all five transcript tools and both
// resources registered.
func New() *server.MCPServer {
	s := server.NewMCPServer(
		"claude-scribe",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	saveTool := tools.NewSaveTranscriptTool()
	s.AddTool(saveTool.Definition(), saveTool.Handle)

	sessionTool := tools.NewSaveSessionTool()
	s.AddTool(sessionTool.Definition(), sessionTool.Handle)

	listTool := tools.NewListTranscriptsTool()
	s.AddTool(listTool.Definition(), listTool.Handle)

	readTool := tools.NewReadTranscriptTool()
	s.AddTool(readTool.Definition(), readTool.Handle)

	pathTool := tools.NewGetPathTool()
	s.AddTool(pathTool.Definition(), pathTool.Handle)

	res := tools.NewResources()
	s.AddResource(res.ConfigResource(), res.HandleConfig)
	s.AddResource(res.RecentResource(), res.HandleRecent)

	return s
}

// ServeStdio runs the server over stdin/stdout until the client
// disconnects. Stdout belongs to the protocol; diagnostics must go to
// stderr.
func ServeStdio() error {
	return server.ServeStdio(New())
}
