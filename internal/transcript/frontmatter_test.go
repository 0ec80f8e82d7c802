package transcript

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLayout(t *testing.T) {
	ts := time.Date(2025, 12, 6, 10, 15, 33, 123456000, time.UTC)
	out := Encode(Record{
		Date:    ts,
		Title:   "My Walk",
		Tags:    []string{"walking", "journal"},
		Summary: "a short walk",
		Body:    "hello",
	})

	assert.True(t, strings.HasPrefix(out, "---\ndate: 2025-12-06T10:15:33.123456\n"))
	assert.Contains(t, out, "title: \"My Walk\"\n")
	assert.Contains(t, out, "tags: [walking, journal]\n")
	assert.Contains(t, out, "summary: \"a short walk\"\n")
	assert.Contains(t, out, "\n# My Walk\n")
	assert.Contains(t, out, "*Saved: 2025-12-06 10:15:33*")
	assert.Contains(t, out, "## Summary\n\na short walk\n")
	assert.Contains(t, out, "## Transcript\n\nhello")
}

func TestEncodeUntitled(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	out := Encode(Record{Date: ts, Body: "body"})

	assert.NotContains(t, out, "title:")
	assert.NotContains(t, out, "tags:")
	assert.NotContains(t, out, "summary:")
	assert.NotContains(t, out, "## Summary")
	assert.Contains(t, out, "# Transcript - 2025-01-02 03:04:05\n")
}

func TestRoundTrip(t *testing.T) {
	ts := time.Date(2025, 12, 6, 10, 15, 33, 123456000, time.UTC)
	rec := Record{
		Date:    ts,
		Title:   "My \"quoted\" Walk",
		Tags:    []string{"a", "b", "c"},
		Summary: "sum",
		Body:    "content",
	}

	meta, err := DecodeMeta([]byte(Encode(rec)))
	require.NoError(t, err)

	assert.Equal(t, rec.Title, meta.Title)
	assert.Equal(t, rec.Tags, meta.Tags)
	assert.Equal(t, rec.Summary, meta.Summary)

	got, err := meta.Time()
	require.NoError(t, err)
	assert.True(t, got.Equal(ts), "date must survive at microsecond precision")
}

func TestEncodeSessionProvenance(t *testing.T) {
	ts := time.Date(2025, 12, 6, 10, 15, 33, 0, time.UTC)
	rec := Record{
		Date:        ts,
		Title:       "Session abc-123",
		Tags:        []string{"auto"},
		Body:        "body",
		SessionFile: "abc-123.jsonl",
		Project:     "-home-u-proj",
	}
	out := Encode(rec)

	assert.Contains(t, out, "session_file: \"abc-123.jsonl\"\n")
	assert.Contains(t, out, "project: \"-home-u-proj\"\n")
	// Provenance sits between title and tags.
	assert.Less(t, strings.Index(out, "title:"), strings.Index(out, "session_file:"))
	assert.Less(t, strings.Index(out, "session_file:"), strings.Index(out, "project:"))
	assert.Less(t, strings.Index(out, "project:"), strings.Index(out, "tags:"))

	// Provenance is recoverable from the file itself.
	meta, err := DecodeMeta([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "abc-123.jsonl", meta.SessionFile)
	assert.Equal(t, "-home-u-proj", meta.Project)

	// Absent for records not built from a session log.
	plain := Encode(Record{Date: ts, Title: "plain", Body: "b"})
	assert.NotContains(t, plain, "session_file:")
	assert.NotContains(t, plain, "project:")
}

func TestQuoteNormalizesNewlines(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	out := Encode(Record{Date: ts, Summary: "line one\nline two", Body: "b"})

	meta, err := DecodeMeta([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "line one line two", meta.Summary)
}

func TestDecodeMetaTolerance(t *testing.T) {
	// Reordered keys, unknown extras, and block-style tags must all decode.
	raw := strings.Join([]string{
		"---",
		"generator: \"some-other-tool\"",
		"title: Untagged",
		"tags:",
		"  - one",
		"  - two",
		"date: 2025-12-06T10:15:33.000001",
		"---",
		"",
		"body",
	}, "\n")

	meta, err := DecodeMeta([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "Untagged", meta.Title)
	assert.Equal(t, []string{"one", "two"}, meta.Tags)
	assert.Empty(t, meta.Summary)
}

func TestDecodeMetaErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no block", "just markdown, no metadata"},
		{"unterminated", "---\ndate: 2025-12-06T10:15:33.000000\nbody without closing fence"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeMeta([]byte(tt.raw))
			assert.True(t, errors.Is(err, ErrMalformed), "got %v", err)
		})
	}
}
