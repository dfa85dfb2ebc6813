package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	keyStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type hint struct {
	key   string
	label string
}

type statusbar struct {
	text  string
	width int
}

func newStatusbar() statusbar {
	return statusbar{text: barStyle.Render("Ready")}
}

func (s *statusbar) SetWidth(w int) {
	s.width = w
}

func (s *statusbar) SetSummary(summary string, healthy bool) {
	if healthy {
		s.text = okStyle.Render(summary)
	} else {
		s.text = warnStyle.Render(summary)
	}
}

func (s *statusbar) SetError(msg string) {
	s.text = errStyle.Render("Error: " + msg)
}

func (s *statusbar) SetLoading() {
	s.text = barStyle.Render("Executing...")
}

func (s statusbar) View() string {
	hints := renderHints()
	gap := s.width - lipgloss.Width(s.text) - lipgloss.Width(hints) - 2
	if gap < 1 {
		gap = 1
	}
	return " " + s.text + strings.Repeat(" ", gap) + hints
}

func renderHints() string {
	hints := []hint{
		{"^e", "execute"},
		{"^p", "prettify"},
		{"tab", "next pane"},
		{"^q", "quit"},
	}
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyStyle.Render(h.key) + " " + labelStyle.Render(h.label)
	}
	return strings.Join(parts, "  ")
}
