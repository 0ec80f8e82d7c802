package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mpalmer/claude-scribe/internal/config"
	"github.com/mpalmer/claude-scribe/internal/store"
)

// ListEntry is one transcript summary in a listing result.
type ListEntry struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Date     string `json:"date,omitempty"`
	Title    string `json:"title,omitempty"`
}

// ListResult is the JSON payload of list_transcripts.
type ListResult struct {
	Transcripts []ListEntry `json:"transcripts"`
	Total       int         `json:"total"`
	Directory   string      `json:"directory"`
	Filters     ListFilters `json:"filters"`
}

type ListFilters struct {
	Year  int `json:"year,omitempty"`
	Month int `json:"month,omitempty"`
	Limit int `json:"limit"`
}

// ListTranscriptsTool lists archived transcripts, newest first.
type ListTranscriptsTool struct{}

func NewListTranscriptsTool() *ListTranscriptsTool { return &ListTranscriptsTool{} }

func (t *ListTranscriptsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_transcripts",
		mcp.WithDescription(
			"List saved transcripts, newest first. "+
				"Returns transcript filenames with dates and titles."),
		mcp.WithNumber("year",
			mcp.Description("Filter by year (e.g., 2025)")),
		mcp.WithNumber("month",
			mcp.Description("Filter by month (1-12)"),
			mcp.Min(1),
			mcp.Max(12)),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default: 20)"),
			mcp.Min(1),
			mcp.Max(100)),
	)
}

func (t *ListTranscriptsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	year := req.GetInt("year", 0)
	month := req.GetInt("month", 0)
	limit := req.GetInt("limit", store.DefaultLimit)

	cfg, err := config.Load()
	if err != nil {
		return errResult(err), nil
	}

	summaries, err := store.New(cfg.TranscriptsDir).List(year, month, limit)
	if err != nil {
		return errResult(err), nil
	}

	entries := make([]ListEntry, 0, len(summaries))
	for _, s := range summaries {
		e := ListEntry{Filename: s.Filename, Path: s.Path, Title: s.Title}
		if !s.Date.IsZero() {
			e.Date = s.Date.Format(time.DateTime)
		}
		entries = append(entries, e)
	}

	return jsonResult(ListResult{
		Transcripts: entries,
		Total:       len(entries),
		Directory:   cfg.TranscriptsDir,
		Filters:     ListFilters{Year: year, Month: month, Limit: limit},
	}), nil
}
