package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpalmer/claude-scribe/internal/config"
	"github.com/mpalmer/claude-scribe/internal/store"
)

func pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the configured and resolved transcripts directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			fmt.Printf("Configured: %s\n", cfg.ConfiguredDir)
			fmt.Printf("Resolved:   %s\n", cfg.TranscriptsDir)
			if env := os.Getenv(config.EnvVar); env != "" {
				fmt.Printf("Via env:    %s=%s\n", config.EnvVar, env)
			}

			if _, err := os.Stat(cfg.TranscriptsDir); err != nil {
				fmt.Println("Exists:     no")
				return nil
			}
			fmt.Println("Exists:     yes")
			if n, err := store.New(cfg.TranscriptsDir).Count(); err == nil {
				fmt.Printf("Archived:   %d transcripts\n", n)
			}
			return nil
		},
	}
}
