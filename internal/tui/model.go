// Package tui is the interactive playground: a schema editor, an
// operations editor, and a results pane. Every keystroke reclassifies the
// edited pane through the playground session; execution runs in a
// background command and stale results are dropped by the session's
// request token.
package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/qlmock/qlmock/pkg/mock"
	"github.com/qlmock/qlmock/pkg/playground"
)

type panel int

const (
	panelSchema panel = iota
	panelOperations
	panelResults
)

type Model struct {
	session *playground.Session

	schema     editor
	operations editor
	results    viewport.Model
	status     statusbar

	focus     panel
	executing bool
	width     int
	height    int
}

// NewModel builds the playground around the given starting texts. Both
// panes are classified immediately so the status line is accurate before
// the first keystroke.
func NewModel(schemaText, operationsText string) Model {
	session := playground.NewSession(mock.Faker())
	session.SetSchemaText(schemaText)
	session.SetOperationsText(operationsText)

	schema := newEditor("Schema", "type Query { ... }", schemaText)
	operations := newEditor("Operations", "query { ... }", operationsText)
	schema.Focus()

	m := Model{
		session:    session,
		schema:     schema,
		operations: operations,
		results:    viewport.New(80, 20),
		status:     newStatusbar(),
		focus:      panelSchema,
	}
	m.results.SetContent("Press ctrl+e to execute")
	m.refreshStatus()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.schema.Focus()
}

// Session exposes the underlying session for tests.
func (m Model) Session() *playground.Session {
	return m.session
}
