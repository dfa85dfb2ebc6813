// Package diagnostic renders GraphQL parse and validation errors as
// source-code snippets with location gutters and caret underlines.
package diagnostic

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

var (
	gutterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	caretStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// RenderSnippet renders a source line with line number, gutter, and caret
// underline:
//
//	3 | query { user }
//	  |         ^^^^ error message here
func RenderSnippet(source string, lineNum int, column int, length int, message string) string {
	if length < 1 {
		length = 1
	}
	if column < 1 {
		column = 1
	}

	numStr := strconv.Itoa(lineNum)
	gutterWidth := len(numStr)

	lineNumStyled := gutterStyle.Render(numStr)
	pipe := gutterStyle.Render("|")
	emptyGutter := strings.Repeat(" ", gutterWidth)

	codeLine := lineNumStyled + " " + pipe + " " + source

	padding := strings.Repeat(" ", column-1)
	carets := caretStyle.Render(strings.Repeat("^", length))
	msgRendered := ""
	if message != "" {
		msgRendered = " " + messageStyle.Render(message)
	}
	underLine := emptyGutter + " " + pipe + " " + padding + carets + msgRendered

	return codeLine + "\n" + underLine
}

// RenderLocation renders a location header like "--> schema.graphql:3:9".
func RenderLocation(filename string, line int, column int) string {
	loc := filename + ":" + strconv.Itoa(line) + ":" + strconv.Itoa(column)
	arrow := gutterStyle.Render("-->")
	return arrow + " " + loc
}

// RenderGQLError renders one gqlparser error against its source text:
// location header, snippet with a caret span, and an optional help line.
// Errors without a location fall back to the bare message.
func RenderGQLError(sourceName, source string, err *gqlerror.Error, span int, help string) string {
	if len(err.Locations) == 0 {
		return "  " + err.Message + "\n"
	}

	loc := err.Locations[0]
	out := RenderLocation(sourceName, loc.Line, loc.Column) + "\n"

	lines := strings.Split(source, "\n")
	if loc.Line > 0 && loc.Line <= len(lines) {
		out += RenderSnippet(lines[loc.Line-1], loc.Line, loc.Column, span, err.Message) + "\n"
	} else {
		out += "  " + err.Message + "\n"
	}

	if help != "" {
		out += "  = help: " + help + "\n"
	}
	return out
}
