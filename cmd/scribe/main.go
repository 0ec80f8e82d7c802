package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpalmer/claude-scribe/internal/server"
)

var version = "dev"

func main() {
	server.Version = version

	rootCmd := &cobra.Command{
		Use:     "scribe",
		Short:   "Archive Claude Code conversation transcripts as timestamped markdown",
		Version: version,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(saveCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(readCmd())
	rootCmd.AddCommand(pathCmd())
	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
