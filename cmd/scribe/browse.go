package main

import (
	"github.com/spf13/cobra"

	"github.com/mpalmer/claude-scribe/internal/config"
	"github.com/mpalmer/claude-scribe/internal/store"
	"github.com/mpalmer/claude-scribe/internal/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the archive in a TUI with preview",
		Long:  `Opens a panel listing all archived transcripts (newest first) with a scrolling preview. Type to filter by title or filename; enter copies the selected file's path.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return tui.Run(store.New(cfg.TranscriptsDir))
		},
	}
}
