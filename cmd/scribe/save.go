package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpalmer/claude-scribe/internal/config"
	"github.com/mpalmer/claude-scribe/internal/extract"
	"github.com/mpalmer/claude-scribe/internal/store"
	"github.com/mpalmer/claude-scribe/internal/transcript"
)

func saveCmd() *cobra.Command {
	var title, summary, file string
	var tags []string
	var session bool

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a transcript from stdin, a file, or the current session",
		Long: `Saves transcript content to the archive. Content is read from stdin
by default, from --file when given, or reconstructed from the most
recent Claude Code session log with --session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			var body string
			switch {
			case session:
				sessionPath, err := extract.FindLatestSession(cfg.ClaudeRoot)
				if err != nil {
					return err
				}
				records, err := extract.ParseFile(sessionPath)
				if err != nil {
					return err
				}
				if title == "" {
					title = "Session " + extract.SessionStem(sessionPath)
				}
				body = extract.Render(records)

			case file != "":
				data, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				body = string(data)

			default:
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
				body = string(data)
			}

			if body == "" {
				return fmt.Errorf("nothing to save")
			}

			rec := transcript.Record{
				Date:    time.Now(),
				Title:   title,
				Tags:    tags,
				Summary: summary,
				Body:    body,
			}
			_, path, err := store.New(cfg.TranscriptsDir).Save(rec)
			if err != nil {
				return err
			}

			fmt.Println(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Title for the transcript")
	cmd.Flags().StringVarP(&summary, "summary", "s", "", "Brief summary")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read content from a file instead of stdin")
	cmd.Flags().BoolVar(&session, "session", false, "Save the most recent Claude Code session")

	return cmd
}
