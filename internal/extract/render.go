package extract

import (
	"strings"
)

// maxResultSize caps rendered tool output; full results live in the
// source log, the transcript only needs a readable excerpt.
const maxResultSize = 8 * 1024

const unparseableMarker = "*[unparseable record]*"

// Render turns extracted records into a single markdown document. Every
// record renders exactly once, in input order, each variant in its own
// visually distinct form so reasoning and tool traffic never blend into
// answer prose.
func Render(records []Record) string {
	parts := make([]string, 0, len(records))
	for _, rec := range records {
		parts = append(parts, renderRecord(rec))
	}
	return strings.Join(parts, "\n")
}

func renderRecord(rec Record) string {
	switch rec.Kind {
	case KindUser:
		return "## Human\n\n" + rec.Text + "\n"
	case KindAssistant:
		return "## Claude\n\n" + rec.Text + "\n"
	case KindThinking:
		return "## Claude (Thinking)\n\n" + blockquote(rec.Text) + "\n"
	case KindToolUse:
		return "### Tool Use: " + rec.ToolName + "\n\n```json\n" + rec.Payload + "\n```\n"
	case KindToolResult:
		return "### Tool Result\n\n```\n" + truncate(rec.Text, maxResultSize) + "\n```\n"
	case KindSystem:
		return "## System (" + rec.Subtype + ")\n\n" + rec.Text + "\n"
	default:
		return unparseableMarker + "\n"
	}
}

// blockquote prefixes every line so multi-line thinking stays inside
// one quoted block.
func blockquote(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = "> " + l
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "\n... (truncated)"
}
