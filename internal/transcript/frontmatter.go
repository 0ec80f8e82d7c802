package transcript

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrMalformed reports a metadata block whose delimiters are absent or
// unterminated. Missing optional keys are not an error.
var ErrMalformed = errors.New("transcript: malformed metadata block")

const delimiter = "---"

const (
	// metaDateLayout is ISO-8601 at microsecond precision, no zone.
	metaDateLayout  = "2006-01-02T15:04:05.000000"
	humanDateLayout = "2006-01-02 15:04:05"
)

// Meta is the recognized front-matter subset. Decoding tolerates key
// reordering and unknown extra keys; round-trip of these fields is the
// only guaranteed property.
type Meta struct {
	Date        string   `yaml:"date"`
	Title       string   `yaml:"title"`
	SessionFile string   `yaml:"session_file"`
	Project     string   `yaml:"project"`
	Tags        []string `yaml:"tags"`
	Summary     string   `yaml:"summary"`
}

// Time parses the date field at microsecond precision, falling back to
// RFC3339 for files written by other tools.
func (m Meta) Time() (time.Time, error) {
	if t, err := time.Parse(metaDateLayout, m.Date); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, m.Date); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("transcript: unparseable date %q", m.Date)
}

// Encode renders the full on-disk file content for a record: the
// front-matter block, title heading, saved-at line, optional summary
// section, and the transcript body. The emitted byte format is fixed
// (quoted title/summary, inline tag list) because existing archives
// depend on it; only Decode goes through the YAML parser.
func Encode(rec Record) string {
	var b strings.Builder

	b.WriteString(delimiter + "\n")
	b.WriteString("date: " + rec.Date.Format(metaDateLayout) + "\n")
	if rec.Title != "" {
		b.WriteString("title: " + quote(rec.Title) + "\n")
	}
	if rec.SessionFile != "" {
		b.WriteString("session_file: " + quote(rec.SessionFile) + "\n")
	}
	if rec.Project != "" {
		b.WriteString("project: " + quote(rec.Project) + "\n")
	}
	if len(rec.Tags) > 0 {
		b.WriteString("tags: [" + strings.Join(rec.Tags, ", ") + "]\n")
	}
	if rec.Summary != "" {
		b.WriteString("summary: " + quote(rec.Summary) + "\n")
	}
	b.WriteString(delimiter + "\n\n")

	human := rec.Date.Format(humanDateLayout)
	if rec.Title != "" {
		b.WriteString("# " + rec.Title + "\n")
	} else {
		b.WriteString("# Transcript - " + human + "\n")
	}
	b.WriteString("\n*Saved: " + human + "*\n\n")

	if rec.Summary != "" {
		b.WriteString("## Summary\n\n" + rec.Summary + "\n\n")
	}

	b.WriteString("## Transcript\n\n")
	b.WriteString(rec.Body)
	b.WriteString("\n")

	return b.String()
}

// DecodeMeta extracts the front-matter block from raw file content and
// returns the recognized keys. It fails only when the block's delimiters
// are absent or unterminated, or the block is not valid YAML.
func DecodeMeta(raw []byte) (Meta, error) {
	s := string(raw)
	if !strings.HasPrefix(s, delimiter+"\n") {
		return Meta{}, fmt.Errorf("%w: missing opening delimiter", ErrMalformed)
	}
	rest := s[len(delimiter)+1:]
	idx := strings.Index(rest, "\n"+delimiter)
	if idx == -1 {
		return Meta{}, fmt.Errorf("%w: unterminated block", ErrMalformed)
	}

	var m Meta
	if err := yaml.Unmarshal([]byte(rest[:idx]), &m); err != nil {
		return Meta{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return m, nil
}

// quote emits a double-quoted scalar. Backslashes and quotes are
// escaped; newlines are normalized to a single space, so multi-line
// titles and summaries decode as one line. Callers that need the full
// multi-line text keep it in the body, not the metadata block.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", " ")
	return `"` + s + `"`
}
