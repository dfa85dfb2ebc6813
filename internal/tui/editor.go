package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// editor is a titled textarea pane.
type editor struct {
	title  string
	ta     textarea.Model
	width  int
	height int
}

func newEditor(title, placeholder, value string) editor {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetValue(value)
	return editor{title: title, ta: ta}
}

func (e editor) Value() string {
	return e.ta.Value()
}

func (e *editor) SetValue(value string) {
	e.ta.SetValue(value)
}

func (e *editor) Focus() tea.Cmd {
	return e.ta.Focus()
}

func (e *editor) Blur() {
	e.ta.Blur()
}

func (e editor) Focused() bool {
	return e.ta.Focused()
}

func (e *editor) SetSize(w, h int) {
	e.width = w
	e.height = h
	e.ta.SetWidth(w - 2)  // border
	e.ta.SetHeight(h - 3) // border + title
}

func (e editor) Update(msg tea.Msg) (editor, tea.Cmd) {
	var cmd tea.Cmd
	e.ta, cmd = e.ta.Update(msg)
	return e, cmd
}

func (e editor) View() string {
	return titleStyle.Render(" "+e.title+" ") + "\n" + e.ta.View()
}
