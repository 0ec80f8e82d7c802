// Package extract reconstructs readable transcripts from Claude Code
// session logs: JSONL records in, ordered markdown out. It also locates
// the active session file under the Claude projects root.
package extract

// Kind discriminates the closed set of renderable record variants.
// Every Kind has exactly one renderer in render.go; adding a variant
// without a renderer is a compile-visible gap in that switch.
type Kind int

const (
	KindUser Kind = iota
	KindAssistant
	KindThinking
	KindToolUse
	KindToolResult
	KindSystem
	// KindUnparseable marks a record that could not be decoded. It is
	// rendered as an inline placeholder, never raised as an error, so
	// one bad record cannot lose the rest of the session.
	KindUnparseable
)

// Record is one conversational unit extracted from the session log.
// A single log line can yield several records (an assistant message
// with thinking, text, and tool-use blocks yields one record each),
// always in the order the blocks appear.
type Record struct {
	Kind     Kind
	Text     string // message text, thinking text, or tool result output
	ToolName string // KindToolUse only
	Payload  string // KindToolUse only: pretty-printed input JSON
	Subtype  string // KindSystem only
}
