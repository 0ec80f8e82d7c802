package tools

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mpalmer/claude-scribe/internal/config"
	"github.com/mpalmer/claude-scribe/internal/store"
)

// Resources exposes read-only archive state over MCP.
type Resources struct{}

func NewResources() *Resources { return &Resources{} }

func (r *Resources) ConfigResource() mcp.Resource {
	return mcp.NewResource("transcript://config",
		"Transcript Saver Configuration",
		mcp.WithResourceDescription("Current configuration for transcript saving"),
		mcp.WithMIMEType("application/json"),
	)
}

func (r *Resources) HandleConfig(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	exists := false
	if _, err := os.Stat(cfg.TranscriptsDir); err == nil {
		exists = true
	}

	payload := map[string]any{
		"transcripts_directory": cfg.TranscriptsDir,
		"directory_exists":      exists,
		"organization":          "YYYY/MM/filename.md",
		"filename_format":       "YYYY-MM-DD_HH-MM-SS_<title>.md",
		"env_var":               config.EnvVar,
		"env_value":             os.Getenv(config.EnvVar),
	}
	return jsonContents("transcript://config", payload)
}

func (r *Resources) RecentResource() mcp.Resource {
	return mcp.NewResource("transcript://recent",
		"Recent Transcripts",
		mcp.WithResourceDescription("List of recently saved transcripts"),
		mcp.WithMIMEType("application/json"),
	)
}

func (r *Resources) HandleRecent(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	st := store.New(cfg.TranscriptsDir)
	summaries, err := st.List(0, 0, 10)
	if err != nil {
		return nil, err
	}
	total, err := st.Count()
	if err != nil {
		total = len(summaries)
	}

	entries := make([]ListEntry, 0, len(summaries))
	for _, s := range summaries {
		e := ListEntry{Filename: s.Filename, Path: s.Path, Title: s.Title}
		if !s.Date.IsZero() {
			e.Date = s.Date.Format(time.DateTime)
		}
		entries = append(entries, e)
	}

	payload := map[string]any{
		"transcripts":      entries,
		"total_in_archive": total,
	}
	return jsonContents("transcript://recent", payload)
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(b),
		},
	}, nil
}
