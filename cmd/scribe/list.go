package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mpalmer/claude-scribe/internal/config"
	"github.com/mpalmer/claude-scribe/internal/store"
)

var (
	listDateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	listTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	listNameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func listCmd() *cobra.Command {
	var year, month, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved transcripts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			summaries, err := store.New(cfg.TranscriptsDir).List(year, month, limit)
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				fmt.Println("no transcripts")
				return nil
			}

			width := 100
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
				width = w
			}

			for _, s := range summaries {
				date := "                "
				if !s.Date.IsZero() {
					date = s.Date.Format("2006-01-02 15:04")
				}
				title := s.Title
				if title == "" {
					title = "(untitled)"
				}
				titleMax := width - len(date) - 3
				if runewidth.StringWidth(title) > titleMax && titleMax > 0 {
					title = runewidth.Truncate(title, titleMax, "…")
				}
				fmt.Printf("%s  %s\n", listDateStyle.Render(date), listTitleStyle.Render(title))
				fmt.Printf("%s\n", listNameStyle.Render("  "+s.Path))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Filter by year (e.g. 2025)")
	cmd.Flags().IntVar(&month, "month", 0, "Filter by month (1-12, requires --year)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results (default 20)")

	return cmd
}
