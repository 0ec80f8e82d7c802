package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mpalmer/claude-scribe/internal/config"
	"github.com/mpalmer/claude-scribe/internal/store"
)

func readCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <filename>",
		Short: "Print a transcript by filename or YYYY/MM/name.md path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			content, err := store.New(cfg.TranscriptsDir).Read(args[0])
			if err != nil {
				return err
			}
			fmt.Print(content)
			return nil
		},
	}
}
