package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	focusedBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))
	blurredBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

func (m Model) View() string {
	left := m.panelStyle(panelSchema).Render(m.schema.View())
	right := m.panelStyle(panelOperations).Render(m.operations.View())
	editors := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	results := m.panelStyle(panelResults).Render(m.results.View())

	status := statusStyle.Width(m.width).Render(m.status.View())

	return lipgloss.JoinVertical(lipgloss.Left, editors, results, status)
}

func (m Model) panelStyle(p panel) lipgloss.Style {
	if m.focus == p {
		return focusedBorder
	}
	return blurredBorder
}

// layoutPanels splits the window: editors side by side on top, results
// below, one status line at the bottom.
func (m *Model) layoutPanels() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	editorHeight := (m.height * 2) / 3
	if editorHeight < 6 {
		editorHeight = 6
	}
	resultsHeight := m.height - editorHeight - 3 // results border + status line
	if resultsHeight < 3 {
		resultsHeight = 3
	}

	paneWidth := m.width/2 - 2 // borders
	m.schema.SetSize(paneWidth, editorHeight)
	m.operations.SetSize(paneWidth, editorHeight)

	m.results.Width = m.width - 2
	m.results.Height = resultsHeight

	m.status.SetWidth(m.width)
}
