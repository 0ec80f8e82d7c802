package extract

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
)

// maxLineSize bounds a single JSONL line; tool outputs can be huge.
const maxLineSize = 10 * 1024 * 1024

// skipTypes is the explicit deny list: record types that carry no
// conversational content and are dropped during extraction. Everything
// else is either rendered, dropped as an unlisted control type, or
// surfaced as an unparseable placeholder — never guessed at.
var skipTypes = map[string]bool{
	"summary":               true,
	"file-history-snapshot": true,
}

// renderTypes is the set of record types that carry conversation.
var renderTypes = map[string]bool{
	"user":      true,
	"assistant": true,
	"system":    true,
}

type logLine struct {
	Type    string          `json:"type"`
	IsMeta  bool            `json:"isMeta"`
	Subtype string          `json:"subtype"`
	Content string          `json:"content"` // system records carry content inline
	Message json.RawMessage `json:"message"`
}

type message struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

type contentBlock struct {
	Type     string          `json:"type"`
	Text     string          `json:"text"`
	Thinking string          `json:"thinking"`
	Name     string          `json:"name"`    // tool_use
	Input    json.RawMessage `json:"input"`   // tool_use
	Content  json.RawMessage `json:"content"` // tool_result
}

// ParseFile extracts all conversational records from a session JSONL
// file, in original order.
func ParseFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads JSONL from r and returns the extracted records. Original
// record order is preserved: nothing is reordered or deduplicated, and
// only the explicit filter policy drops records. Malformed lines become
// KindUnparseable records instead of aborting the extraction.
func Parse(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var records []Record
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		records = append(records, parseLine(line)...)
	}
	return records, scanner.Err()
}

func parseLine(line []byte) []Record {
	var rec logLine
	if err := json.Unmarshal(line, &rec); err != nil {
		return []Record{{Kind: KindUnparseable}}
	}
	if skipTypes[rec.Type] || rec.IsMeta {
		return nil
	}
	if rec.Type == "" {
		// Missing discriminator: surfaced, not dropped.
		return []Record{{Kind: KindUnparseable}}
	}
	if !renderTypes[rec.Type] {
		// Named but unlisted types are control records.
		return nil
	}

	switch rec.Type {
	case "system":
		if rec.Subtype == "" || rec.Content == "" {
			return nil
		}
		return []Record{{Kind: KindSystem, Subtype: rec.Subtype, Text: rec.Content}}

	case "user":
		return parseUser(rec.Message)

	default: // assistant
		return parseAssistant(rec.Message)
	}
}

func parseUser(raw json.RawMessage) []Record {
	var msg message
	if err := json.Unmarshal(raw, &msg); err != nil || len(msg.Content) == 0 {
		return []Record{{Kind: KindUnparseable}}
	}

	// Content is either a plain string or an array of blocks.
	var s string
	if err := json.Unmarshal(msg.Content, &s); err == nil {
		if s == "" {
			return nil
		}
		return []Record{{Kind: KindUser, Text: s}}
	}

	var blocks []contentBlock
	if err := json.Unmarshal(msg.Content, &blocks); err != nil {
		return []Record{{Kind: KindUnparseable}}
	}

	var out []Record
	for _, b := range blocks {
		switch b.Type {
		case "text":
			if b.Text != "" {
				out = append(out, Record{Kind: KindUser, Text: b.Text})
			}
		case "tool_result":
			out = append(out, Record{Kind: KindToolResult, Text: toolResultText(b.Content)})
		}
	}
	return out
}

func parseAssistant(raw json.RawMessage) []Record {
	var msg message
	if err := json.Unmarshal(raw, &msg); err != nil || len(msg.Content) == 0 {
		return []Record{{Kind: KindUnparseable}}
	}

	var blocks []contentBlock
	if err := json.Unmarshal(msg.Content, &blocks); err != nil {
		return []Record{{Kind: KindUnparseable}}
	}

	var out []Record
	for _, b := range blocks {
		switch b.Type {
		case "text":
			if b.Text != "" {
				out = append(out, Record{Kind: KindAssistant, Text: b.Text})
			}
		case "thinking":
			if b.Thinking != "" {
				out = append(out, Record{Kind: KindThinking, Text: b.Thinking})
			}
		case "tool_use":
			name := b.Name
			if name == "" {
				name = "unknown"
			}
			out = append(out, Record{Kind: KindToolUse, ToolName: name, Payload: prettyJSON(b.Input)})
		}
	}
	return out
}

// toolResultText flattens a tool_result payload, which is either a
// plain string or an array of text blocks.
func toolResultText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var blocks []contentBlock
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return string(raw)
	}
	var parts []string
	for _, b := range blocks {
		if b.Type == "text" && b.Text != "" {
			parts = append(parts, b.Text)
		}
	}
	return strings.Join(parts, "\n")
}

func prettyJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
