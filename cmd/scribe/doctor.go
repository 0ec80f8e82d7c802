package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpalmer/claude-scribe/internal/config"
	"github.com/mpalmer/claude-scribe/internal/extract"
	"github.com/mpalmer/claude-scribe/internal/store"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify directories and show archive stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Directories ===")
			checkDir("Transcripts", cfg.TranscriptsDir)
			checkDir("Claude projects", cfg.ClaudeRoot)

			fmt.Println("\n=== Archive ===")
			st := store.New(cfg.TranscriptsDir)
			if n, err := st.Count(); err != nil {
				fmt.Printf("  count error: %v\n", err)
			} else {
				fmt.Printf("  Transcripts: %d\n", n)
			}
			if recent, err := st.List(0, 0, 1); err == nil && len(recent) > 0 {
				fmt.Printf("  Newest:      %s\n", recent[0].Path)
			}

			fmt.Println("\n=== Active session ===")
			if cwd, err := os.Getwd(); err == nil {
				checkDir("This project", filepath.Join(cfg.ClaudeRoot, extract.ProjectDirName(cwd)))
			}
			sessionPath, err := extract.FindLatestSession(cfg.ClaudeRoot)
			if err != nil {
				fmt.Printf("  %v\n", err)
				return nil
			}
			fmt.Printf("  File: %s\n", sessionPath)
			if info, err := os.Stat(sessionPath); err == nil {
				fmt.Printf("  Modified: %s (%.1f KB)\n",
					info.ModTime().Format(time.RFC3339), float64(info.Size())/1024)
			}
			if records, err := extract.ParseFile(sessionPath); err == nil {
				fmt.Printf("  Records: %d\n", len(records))
			}

			return nil
		},
	}
}

func checkDir(name, path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Printf("  %s: %s (NOT FOUND)\n", name, path)
	} else if !info.IsDir() {
		fmt.Printf("  %s: %s (NOT A DIRECTORY)\n", name, path)
	} else {
		fmt.Printf("  %s: %s (OK)\n", name, path)
	}
}
