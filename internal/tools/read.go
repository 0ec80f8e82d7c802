package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mpalmer/claude-scribe/internal/config"
	"github.com/mpalmer/claude-scribe/internal/store"
)

// ReadTranscriptTool returns the full content of one transcript.
type ReadTranscriptTool struct{}

func NewReadTranscriptTool() *ReadTranscriptTool { return &ReadTranscriptTool{} }

func (t *ReadTranscriptTool) Definition() mcp.Tool {
	return mcp.NewTool("read_transcript",
		mcp.WithDescription("Read the content of a specific transcript by filename or YYYY/MM/name.md path"),
		mcp.WithString("filename",
			mcp.Required(),
			mcp.Description("Filename or relative path of the transcript to read")),
	)
}

func (t *ReadTranscriptTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename, err := req.RequireString("filename")
	if err != nil {
		return errResult(err), nil
	}

	cfg, err := config.Load()
	if err != nil {
		return errResult(err), nil
	}

	content, err := store.New(cfg.TranscriptsDir).Read(filename)
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText(content), nil
}
