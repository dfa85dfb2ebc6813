package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/qlmock/qlmock/pkg/playground"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case execDoneMsg:
		if !m.session.Commit(msg.execution, msg.result) {
			// A newer execution was started after this one; drop it.
			return m, nil
		}
		m.executing = false
		raw, err := json.MarshalIndent(msg.result, "", "  ")
		if err != nil {
			m.status.SetError(err.Error())
			return m, nil
		}
		m.results.SetContent(string(raw))
		if msg.result.HasErrors() {
			m.status.SetSummary(fmt.Sprintf("Executed with %d error(s)", len(msg.result.Errors)), false)
		} else {
			m.status.SetSummary("Executed", true)
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.NextPane):
		m.setFocus((m.focus + 1) % 3)
		cmd := m.focusCmd()
		return m, cmd

	case key.Matches(msg, keys.PrevPane):
		m.setFocus((m.focus + 2) % 3)
		cmd := m.focusCmd()
		return m, cmd

	case key.Matches(msg, keys.Execute):
		return m.startExecution()

	case key.Matches(msg, keys.Prettify):
		m.session.Prettify()
		m.schema.SetValue(m.session.SchemaText())
		m.operations.SetValue(m.session.OperationsText())
		m.refreshStatus()
		return m, nil
	}

	return m.updateFocused(msg)
}

// updateFocused forwards a message to the focused pane and, for editors,
// pushes the edited text through the session so classification and
// cross-validation track every keystroke.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case panelSchema:
		before := m.schema.Value()
		m.schema, cmd = m.schema.Update(msg)
		if m.schema.Value() != before {
			m.session.SetSchemaText(m.schema.Value())
			m.refreshStatus()
		}
	case panelOperations:
		before := m.operations.Value()
		m.operations, cmd = m.operations.Update(msg)
		if m.operations.Value() != before {
			m.session.SetOperationsText(m.operations.Value())
			m.refreshStatus()
		}
	case panelResults:
		m.results, cmd = m.results.Update(msg)
	}
	return m, cmd
}

func (m *Model) startExecution() (tea.Model, tea.Cmd) {
	execution, err := m.session.PrepareExecution()
	if err != nil {
		m.status.SetError(err.Error())
		m.results.SetContent(err.Error())
		return *m, nil
	}
	m.executing = true
	m.status.SetLoading()
	return *m, func() tea.Msg {
		return execDoneMsg{execution: execution, result: execution.Run(context.Background())}
	}
}

func (m *Model) setFocus(p panel) {
	m.focus = p
	m.schema.Blur()
	m.operations.Blur()
}

func (m *Model) focusCmd() tea.Cmd {
	switch m.focus {
	case panelSchema:
		return m.schema.Focus()
	case panelOperations:
		return m.operations.Focus()
	}
	return nil
}

// refreshStatus rebuilds the tri-state summary line: per-pane classification
// plus cross-validation, where "—" means not applicable rather than clean.
func (m *Model) refreshStatus() {
	schemaPart, schemaOK := paneSummary("schema", m.session.SchemaStatus(), m.session.SchemaErrors())
	operationsPart, operationsOK := paneSummary("operations", m.session.OperationsStatus(), m.session.OperationsErrors())

	crossPart := "validation —"
	crossOK := true
	if failure := m.session.ValidatorFailure(); failure != nil {
		crossPart = "validator failed"
		crossOK = false
	} else if errs, ran := m.session.CrossValidation(); ran {
		if len(errs) == 0 {
			crossPart = "validation ✓"
		} else {
			crossPart = fmt.Sprintf("validation ✗ %d", len(errs))
			crossOK = false
		}
	}

	m.status.SetSummary(schemaPart+"  "+operationsPart+"  "+crossPart, schemaOK && operationsOK && crossOK)
	m.showDiagnostics()
}

func paneSummary(name string, status playground.Status, errs gqlerror.List) (string, bool) {
	switch status {
	case playground.StatusAccepted:
		return name + " ✓", true
	case playground.StatusNotApplicable:
		return name + " –", true
	default:
		return fmt.Sprintf("%s ✗ %d", name, len(errs)), false
	}
}

// showDiagnostics mirrors current errors into the results pane so they are
// readable in full; a clean state leaves the last execution result alone.
func (m *Model) showDiagnostics() {
	var sections []string
	if errs := m.session.SchemaErrors(); len(errs) > 0 {
		sections = append(sections, "Schema errors:\n"+renderErrors(errs))
	}
	if errs := m.session.OperationsErrors(); len(errs) > 0 {
		sections = append(sections, "Operations errors:\n"+renderErrors(errs))
	}
	if failure := m.session.ValidatorFailure(); failure != nil {
		sections = append(sections, failure.Error())
	} else if errs, ran := m.session.CrossValidation(); ran && len(errs) > 0 {
		sections = append(sections, "Validation errors:\n"+renderErrors(errs))
	}
	if len(sections) > 0 {
		m.results.SetContent(strings.Join(sections, "\n\n"))
	}
}

func renderErrors(errs gqlerror.List) string {
	var lines []string
	for _, err := range errs {
		line := "  " + err.Message
		if len(err.Locations) > 0 {
			line += fmt.Sprintf(" (%d:%d)", err.Locations[0].Line, err.Locations[0].Column)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
