package main

import (
	"github.com/spf13/cobra"

	"github.com/mpalmer/claude-scribe/internal/server"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over stdio",
		Long: `Serves the transcript tools (save_transcript, save_current_session,
list_transcripts, read_transcript, get_transcripts_path) over the MCP
stdio transport. Stdout carries the protocol; diagnostics go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.ServeStdio()
		},
	}
}
