package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setHome isolates the test from the real home directory and any
// config file living there.
func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := setHome(t)
	t.Setenv(EnvVar, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "transcripts"), cfg.TranscriptsDir)
	assert.Equal(t, filepath.Join(home, ".claude", "projects"), cfg.ClaudeRoot)
	assert.Equal(t, cfg.TranscriptsDir, cfg.ConfiguredDir)
}

func TestLoadConfigFile(t *testing.T) {
	home := setHome(t)
	t.Setenv(EnvVar, "")

	cfgDir := filepath.Join(home, ".config", "scribe")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"),
		[]byte("transcripts_dir = \"/srv/archive\"\nclaude_root = \"~/claude-logs\"\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/archive", cfg.TranscriptsDir)
	assert.Equal(t, filepath.Join(home, "claude-logs"), cfg.ClaudeRoot)
}

func TestLoadEnvOverride(t *testing.T) {
	setHome(t)
	dir := t.TempDir()
	t.Setenv(EnvVar, dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.TranscriptsDir)
	assert.Equal(t, dir, cfg.ConfiguredDir)
}

func TestLoadEnvTildeExpansion(t *testing.T) {
	home := setHome(t)
	t.Setenv(EnvVar, "~/my-transcripts")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "~/my-transcripts", cfg.ConfiguredDir)
	assert.Equal(t, filepath.Join(home, "my-transcripts"), cfg.TranscriptsDir)
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, "/home/u/x", expandHome("~/x", "/home/u"))
	assert.Equal(t, "/abs/x", expandHome("/abs/x", "/home/u"))
	assert.Equal(t, "~", expandHome("~", "/home/u"))
}
