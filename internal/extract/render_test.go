package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderVariants(t *testing.T) {
	out := Render([]Record{
		{Kind: KindUser, Text: "where are we?"},
		{Kind: KindThinking, Text: "first line\nsecond line"},
		{Kind: KindAssistant, Text: "almost there"},
		{Kind: KindToolUse, ToolName: "Bash", Payload: "{\n  \"command\": \"ls\"\n}"},
		{Kind: KindToolResult, Text: "a b c"},
		{Kind: KindSystem, Subtype: "compact_boundary", Text: "compacted"},
		{Kind: KindUnparseable},
	})

	assert.Contains(t, out, "## Human\n\nwhere are we?")
	assert.Contains(t, out, "## Claude (Thinking)\n\n> first line\n> second line")
	assert.Contains(t, out, "## Claude\n\nalmost there")
	assert.Contains(t, out, "### Tool Use: Bash\n\n```json\n{\n  \"command\": \"ls\"\n}\n```")
	assert.Contains(t, out, "### Tool Result\n\n```\na b c\n```")
	assert.Contains(t, out, "## System (compact_boundary)\n\ncompacted")
	assert.Contains(t, out, unparseableMarker)
}

func TestRenderPreservesOrder(t *testing.T) {
	out := Render([]Record{
		{Kind: KindUser, Text: "one"},
		{Kind: KindAssistant, Text: "two"},
		{Kind: KindUser, Text: "three"},
	})
	require.Less(t, strings.Index(out, "one"), strings.Index(out, "two"))
	require.Less(t, strings.Index(out, "two"), strings.Index(out, "three"))
}

func TestRenderTruncatesToolResults(t *testing.T) {
	huge := strings.Repeat("x", maxResultSize+100)
	out := Render([]Record{{Kind: KindToolResult, Text: huge}})
	assert.Contains(t, out, "... (truncated)")
	assert.Less(t, len(out), maxResultSize+200)
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "", Render(nil))
}
