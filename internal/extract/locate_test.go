package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectDirName(t *testing.T) {
	tests := []struct {
		cwd  string
		want string
	}{
		{`C:\dev`, "C--dev"},
		{"/home/user/project", "home-user-project"},
		{"relative/path", "relative-path"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProjectDirName(tt.cwd))
	}
}

func TestFindLatestSession(t *testing.T) {
	root := t.TempDir()
	write := func(rel string, age time.Duration) string {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))
		mtime := time.Now().Add(-age)
		require.NoError(t, os.Chtimes(path, mtime, mtime))
		return path
	}

	write("proj-a/old.jsonl", 2*time.Hour)
	newest := write("proj-b/new.jsonl", time.Minute)
	write("proj-b/subagents/agent.jsonl", 0) // excluded despite being newest
	write("proj-b/sessions-index.jsonl", 0)  // excluded index file
	write("proj-b/notes.md", 0)              // wrong extension

	got, err := FindLatestSession(root)
	require.NoError(t, err)
	assert.Equal(t, newest, got)
}

func TestFindLatestSessionEmpty(t *testing.T) {
	_, err := FindLatestSession(t.TempDir())
	assert.True(t, errors.Is(err, ErrNoSession))

	_, err = FindLatestSession(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.Is(err, ErrNoSession))
}

func TestSessionStem(t *testing.T) {
	assert.Equal(t, "abc-123", SessionStem("/x/y/abc-123.jsonl"))
}
