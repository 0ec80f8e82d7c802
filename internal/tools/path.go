package tools

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mpalmer/claude-scribe/internal/config"
	"github.com/mpalmer/claude-scribe/internal/store"
)

// PathResult is the JSON payload of get_transcripts_path.
type PathResult struct {
	ConfiguredPath  string `json:"configured_path"`
	ResolvedPath    string `json:"resolved_path"`
	Exists          bool   `json:"exists"`
	EnvVar          string `json:"env_var"`
	EnvValue        string `json:"env_value,omitempty"`
	TranscriptCount *int   `json:"transcript_count,omitempty"`
}

// GetPathTool reports where transcripts are stored.
type GetPathTool struct{}

func NewGetPathTool() *GetPathTool { return &GetPathTool{} }

func (t *GetPathTool) Definition() mcp.Tool {
	return mcp.NewTool("get_transcripts_path",
		mcp.WithDescription("Get the current transcripts directory path"),
	)
}

func (t *GetPathTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := config.Load()
	if err != nil {
		return errResult(err), nil
	}

	result := PathResult{
		ConfiguredPath: cfg.ConfiguredDir,
		ResolvedPath:   cfg.TranscriptsDir,
		EnvVar:         config.EnvVar,
		EnvValue:       os.Getenv(config.EnvVar),
	}

	if _, err := os.Stat(cfg.TranscriptsDir); err == nil {
		result.Exists = true
		if n, err := store.New(cfg.TranscriptsDir).Count(); err == nil {
			result.TranscriptCount = &n
		}
	}

	return jsonResult(result), nil
}
