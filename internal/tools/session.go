package tools

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mpalmer/claude-scribe/internal/config"
	"github.com/mpalmer/claude-scribe/internal/extract"
	"github.com/mpalmer/claude-scribe/internal/store"
	"github.com/mpalmer/claude-scribe/internal/transcript"
)

// SaveSessionTool reconstructs the active Claude Code session from its
// JSONL log and archives the rendered transcript.
type SaveSessionTool struct{}

func NewSaveSessionTool() *SaveSessionTool { return &SaveSessionTool{} }

func (t *SaveSessionTool) Definition() mcp.Tool {
	return mcp.NewTool("save_current_session",
		mcp.WithDescription(
			"Automatically save the current Claude Code session transcript. "+
				"Reads the active JSONL session log, reconstructs all turns "+
				"including extended thinking and tool calls, and saves the "+
				"result as formatted markdown. Use this before context "+
				"compacting to preserve the full conversation. Finds the most "+
				"recent session automatically."),
		mcp.WithString("title",
			mcp.Description("Optional title for the transcript")),
		mcp.WithArray("tags",
			mcp.Description("Optional tags for categorizing the transcript"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithBoolean("include_raw",
			mcp.Description("Also save the raw JSONL session log alongside the transcript (default: false)")),
	)
}

func (t *SaveSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := config.Load()
	if err != nil {
		return errResult(err), nil
	}

	sessionPath, err := extract.FindLatestSession(cfg.ClaudeRoot)
	if err != nil {
		return errResult(err), nil
	}

	records, err := extract.ParseFile(sessionPath)
	if err != nil {
		return errResult(err), nil
	}

	title := req.GetString("title", "")
	if title == "" {
		title = "Session " + extract.SessionStem(sessionPath)
	}

	body := "*Source: " + filepath.Base(sessionPath) + "*\n\n---\n\n" + extract.Render(records)

	rec := transcript.Record{
		Date:        time.Now(),
		Title:       title,
		Tags:        req.GetStringSlice("tags", nil),
		Body:        body,
		SessionFile: filepath.Base(sessionPath),
		Project:     filepath.Base(filepath.Dir(sessionPath)),
	}

	st := store.New(cfg.TranscriptsDir)
	filename, path, err := st.Save(rec)
	if err != nil {
		return errResult(err), nil
	}

	result := SaveResult{
		Status:      "saved",
		Filename:    filename,
		Path:        path,
		Timestamp:   rec.Date.Format(time.RFC3339Nano),
		SizeBytes:   len(transcript.Encode(rec)),
		Title:       title,
		Tags:        rec.Tags,
		SourceJSONL: sessionPath,
		Project:     rec.Project,
	}

	if req.GetBool("include_raw", false) {
		raw, err := os.ReadFile(sessionPath)
		if err != nil {
			return errResult(err), nil
		}
		_, rawPath, err := st.SaveRaw(rec.Date, raw)
		if err != nil {
			return errResult(err), nil
		}
		result.RawJSONLSaved = rawPath
	}

	return jsonResult(result), nil
}
