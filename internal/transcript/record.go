// Package transcript defines the persisted transcript unit: its metadata
// front-matter encoding and the timestamped filename scheme.
package transcript

import "time"

// Record is the unit the store persists. Body is the fully rendered
// markdown transcript; files are append-only artifacts and a written
// body is never edited in place.
type Record struct {
	Date    time.Time
	Title   string   // empty means untitled
	Tags    []string // may be empty
	Summary string   // empty means absent
	Body    string

	// Session provenance, set only for records built from a session log.
	SessionFile string // base name of the source JSONL
	Project     string // project directory the session belongs to
}
