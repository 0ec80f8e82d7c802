package tools

import (
	"context"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mpalmer/claude-scribe/internal/config"
	"github.com/mpalmer/claude-scribe/internal/store"
	"github.com/mpalmer/claude-scribe/internal/transcript"
)

// SaveResult is the JSON payload returned by both save tools.
type SaveResult struct {
	Status        string   `json:"status"`
	Filename      string   `json:"filename"`
	Path          string   `json:"path"`
	Timestamp     string   `json:"timestamp"`
	SizeBytes     int      `json:"size_bytes"`
	Title         string   `json:"title,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	SourceJSONL   string   `json:"source_jsonl,omitempty"`
	Project       string   `json:"project,omitempty"`
	RawJSONLSaved string   `json:"raw_jsonl_saved,omitempty"`
}

// SaveTranscriptTool archives caller-provided markdown content.
type SaveTranscriptTool struct{}

func NewSaveTranscriptTool() *SaveTranscriptTool { return &SaveTranscriptTool{} }

func (t *SaveTranscriptTool) Definition() mcp.Tool {
	return mcp.NewTool("save_transcript",
		mcp.WithDescription(
			"Save a transcript to a timestamped markdown file. "+
				"Content is stored under the transcripts directory in YYYY/MM/ "+
				"with a timestamp filename. Use this to archive conversation "+
				"sessions, walking journeys, and explorations."),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The full transcript content to save (markdown format)")),
		mcp.WithString("title",
			mcp.Description("Optional title for the transcript (used in filename and header)")),
		mcp.WithArray("tags",
			mcp.Description("Optional tags for categorizing the transcript"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("summary",
			mcp.Description("Optional brief summary of the conversation")),
	)
}

func (t *SaveTranscriptTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := req.RequireString("content")
	if err != nil {
		return errResult(err), nil
	}
	if strings.TrimSpace(content) == "" {
		return mcp.NewToolResultError("content cannot be empty"), nil
	}

	rec := transcript.Record{
		Date:    time.Now(),
		Title:   req.GetString("title", ""),
		Tags:    req.GetStringSlice("tags", nil),
		Summary: req.GetString("summary", ""),
		Body:    content,
	}

	cfg, err := config.Load()
	if err != nil {
		return errResult(err), nil
	}

	filename, path, err := store.New(cfg.TranscriptsDir).Save(rec)
	if err != nil {
		return errResult(err), nil
	}

	return jsonResult(SaveResult{
		Status:    "saved",
		Filename:  filename,
		Path:      path,
		Timestamp: rec.Date.Format(time.RFC3339Nano),
		SizeBytes: len(transcript.Encode(rec)),
		Title:     rec.Title,
		Tags:      rec.Tags,
	}), nil
}
