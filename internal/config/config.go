package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvVar overrides transcripts_dir when set.
const EnvVar = "TRANSCRIPTS_DIR"

type Config struct {
	TranscriptsDir string `toml:"transcripts_dir"`
	ClaudeRoot     string `toml:"claude_root"`

	// ConfiguredDir is the transcripts dir exactly as configured (env,
	// config file, or default), before ~ expansion. TranscriptsDir is
	// the resolved form actually used for filesystem access.
	ConfiguredDir string `toml:"-"`
}

// Load resolves the active configuration. It is called at the start of
// every tool invocation rather than cached, so a changed env var or
// config file takes effect on the next call.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		TranscriptsDir: filepath.Join(home, "transcripts"),
		ClaudeRoot:     filepath.Join(home, ".claude", "projects"),
	}

	cfgPath := filepath.Join(home, ".config", "scribe", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	if env := os.Getenv(EnvVar); env != "" {
		cfg.TranscriptsDir = env
	}

	cfg.ConfiguredDir = cfg.TranscriptsDir
	cfg.TranscriptsDir = expandHome(cfg.TranscriptsDir, home)
	cfg.ClaudeRoot = expandHome(cfg.ClaudeRoot, home)

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
