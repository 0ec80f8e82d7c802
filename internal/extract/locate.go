package extract

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoSession reports that no session log exists under the projects root.
var ErrNoSession = errors.New("extract: no session files found")

// ProjectDirName converts a working directory to the mangled folder
// name Claude Code uses under its projects root: drive colons are
// stripped and both separator styles become hyphens, with one leading
// hyphen removed (C:\dev -> C--dev, /home/u/p -> home-u-p).
func ProjectDirName(cwd string) string {
	s := strings.ReplaceAll(cwd, ":", "")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, "/", "-")
	return strings.TrimPrefix(s, "-")
}

// FindLatestSession returns the most recently modified session JSONL
// under root, searching every project directory. Subagent logs and
// index files are not sessions and are excluded.
func FindLatestSession(root string) (string, error) {
	var best string
	var bestMtime int64

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable dirs
		}
		if info.IsDir() {
			if filepath.Base(path) == "subagents" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".jsonl" {
			return nil
		}
		if strings.Contains(filepath.Base(path), "sessions-index") {
			return nil
		}
		if mt := info.ModTime().UnixNano(); best == "" || mt > bestMtime {
			best, bestMtime = path, mt
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return "", err
	}
	if best == "" {
		return "", ErrNoSession
	}
	return best, nil
}

// SessionStem is the session identifier derived from the log filename.
func SessionStem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".jsonl")
}
