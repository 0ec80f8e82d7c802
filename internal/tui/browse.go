// Package tui is a terminal browser for the transcript archive: a
// filterable list on the left, a scrolling preview on the right.
// Selecting an entry copies its absolute path to the clipboard.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mpalmer/claude-scribe/internal/store"
)

type model struct {
	root        string
	all         []store.Summary
	visible     []store.Summary
	cursor      int
	listOffset  int
	filterInput textinput.Model
	preview     viewport.Model
	previewPath string
	status      string
	width       int
	height      int
	ready       bool
	quitting    bool
}

// Run loads the archive and blocks until the browser exits.
func Run(st *store.Store) error {
	summaries, err := st.List(0, 0, 1<<30)
	if err != nil {
		return err
	}

	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.Focus()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 256

	m := model{
		root:        st.Root(),
		all:         summaries,
		visible:     summaries,
		filterInput: ti,
		preview:     viewport.New(0, 0),
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.layoutPreview()
		m.loadPreview()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			m.loadPreview()
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
			m.loadPreview()
			return m, nil

		case key.Matches(msg, keys.Enter):
			if m.cursor < len(m.visible) {
				path := filepath.Join(m.root, m.visible[m.cursor].Path)
				if err := clipboard.WriteAll(path); err != nil {
					m.status = "clipboard: " + err.Error()
				} else {
					m.status = "copied " + path
				}
			}
			return m, nil

		case key.Matches(msg, keys.PreviewUp):
			m.preview.HalfViewUp()
			return m, nil

		case key.Matches(msg, keys.PreviewDn):
			m.preview.HalfViewDown()
			return m, nil
		}

		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.applyFilter()
		m.loadPreview()
		return m, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	return m, nil
}

// applyFilter narrows the visible set to entries whose title or
// filename contains the query, case-insensitively.
func (m *model) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filterInput.Value()))
	if query == "" {
		m.visible = m.all
	} else {
		var out []store.Summary
		for _, s := range m.all {
			if strings.Contains(strings.ToLower(s.Title), query) ||
				strings.Contains(strings.ToLower(s.Filename), query) {
				out = append(out, s)
			}
		}
		m.visible = out
	}
	if m.cursor >= len(m.visible) {
		m.cursor = 0
		m.listOffset = 0
	}
}

func (m *model) layoutPreview() {
	listW := m.listWidth()
	m.preview.Width = m.width - listW - 4 // borders
	m.preview.Height = m.height - 4       // input + status + borders
	if m.preview.Width < 0 {
		m.preview.Width = 0
	}
	if m.preview.Height < 0 {
		m.preview.Height = 0
	}
}

func (m *model) listWidth() int {
	w := m.width * 2 / 5
	if w < 30 {
		w = 30
	}
	return w
}

// loadPreview reads the selected transcript into the preview pane. The
// file is re-read on every selection change; the archive may grow
// between keystrokes and nothing here caches directory state.
func (m *model) loadPreview() {
	if !m.ready || m.cursor >= len(m.visible) {
		m.preview.SetContent("")
		m.previewPath = ""
		return
	}
	path := filepath.Join(m.root, m.visible[m.cursor].Path)
	if path == m.previewPath {
		return
	}
	m.previewPath = path

	data, err := os.ReadFile(path)
	if err != nil {
		m.preview.SetContent(styleDim.Render("unreadable: " + err.Error()))
		return
	}
	m.preview.SetContent(string(data))
	m.preview.GotoTop()
}

func (m model) View() string {
	if !m.ready || m.quitting {
		return ""
	}

	listW := m.listWidth()
	listH := m.height - 4

	list := m.renderList(listW, listH)
	left := styleActiveBorder.Width(listW).Height(listH).Render(list)
	right := stylePanelBorder.Render(m.preview.View())
	panels := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := m.status
	if status == "" {
		status = fmt.Sprintf("%d transcripts · enter: copy path · esc: quit", len(m.visible))
	}

	return m.filterInput.View() + "\n" + panels + "\n" + styleStatusBar.Render(status)
}

// renderList renders two lines per entry: date + title, then the
// filename dimmed underneath.
func (m model) renderList(width, height int) string {
	if len(m.visible) == 0 {
		return styleDim.Render("No transcripts")
	}

	const linesPerItem = 2
	visibleItems := height / linesPerItem
	if visibleItems < 1 {
		visibleItems = 1
	}
	offset := m.listOffset
	if m.cursor < offset {
		offset = m.cursor
	}
	if m.cursor >= offset+visibleItems {
		offset = m.cursor - visibleItems + 1
	}

	var lines []string
	for i := offset; i < len(m.visible); i++ {
		if len(lines)+linesPerItem > height {
			break
		}
		lines = append(lines, formatEntry(m.visible[i], width, i == m.cursor)...)
	}
	return strings.Join(lines, "\n")
}

func formatEntry(s store.Summary, width int, selected bool) []string {
	date := ""
	if !s.Date.IsZero() {
		date = s.Date.Format("2006-01-02 15:04")
	}

	title := s.Title
	if title == "" {
		title = "(untitled)"
	}
	titleMax := width - 2 - len(date) - 1
	if titleMax < 0 {
		titleMax = 0
	}
	if runewidth.StringWidth(title) > titleMax {
		title = runewidth.Truncate(title, titleMax, "")
	}

	line1 := styleDate.Render(date) + " " + title
	if selected {
		line1 = styleSelected.Render("> ") + line1
	} else {
		line1 = "  " + line1
	}

	name := s.Filename
	nameMax := width - 4
	if nameMax < 0 {
		nameMax = 0
	}
	if runewidth.StringWidth(name) > nameMax {
		name = runewidth.Truncate(name, nameMax, "")
	}
	line2 := "    " + styleDim.Render(name)

	return []string{line1, line2}
}
