package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

var tableStyle = lipgloss.NewStyle().PaddingRight(1)

func makeTable() *table.Table {
	return table.New().
		Width(120).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			return tableStyle
		})
}

const maxSuggestionDistance = 5

func findClosest(input string, candidates []string) string {
	minDist := -1
	closest := ""
	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(input, c)
		if minDist == -1 || dist < minDist {
			minDist = dist
			closest = c
		}
	}
	if minDist > maxSuggestionDistance {
		return ""
	}
	return closest
}

// pluck maps a slice to the values a selector extracts from each element.
func pluck[T any, V any](items []T, selector func(T) V) []V {
	result := make([]V, 0, len(items))
	for _, item := range items {
		result = append(result, selector(item))
	}
	return result
}

// loadSchemaText reads the schema file named by the persistent -s flag.
func loadSchemaText() (string, error) {
	bytes, err := os.ReadFile(schemaFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("schema file does not exist: %s", schemaFilePath)
		}
		return "", err
	}
	return string(bytes), nil
}

// readOperations reads the operations document from the file argument, or
// from stdin when no argument is given.
func readOperations(cmd *cobra.Command, args []string) (source string, name string, err error) {
	if len(args) == 1 {
		bytes, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read operations file: %w", err)
		}
		return string(bytes), args[0], nil
	}
	bytes, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	return string(bytes), "stdin", nil
}

func convertGQLErrors(errs gqlerror.List) []ValidationError {
	var result []ValidationError
	for _, err := range errs {
		valErr := ValidationError{
			Message: err.Message,
			Rule:    err.Rule,
		}
		for _, loc := range err.Locations {
			valErr.Locations = append(valErr.Locations, Location{
				Line:   loc.Line,
				Column: loc.Column,
			})
		}
		result = append(result, valErr)
	}
	return result
}
