/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/qlmock/qlmock/internal/tui"
	"github.com/qlmock/qlmock/pkg/playground"
	"github.com/spf13/cobra"
)

func NewPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play [schema-file [operations-file]]",
		Short: "Open the interactive playground",
		Long: `Opens a terminal playground with a schema editor, an operations editor,
and a results pane. Both documents are reclassified and cross-validated on
every keystroke; ctrl+e executes the operations against mocked data and
ctrl+p reformats both panes.

Without arguments the playground starts with a small annotated sample
schema. Pass file paths to start from existing documents (files are not
written back; the playground is a scratch surface).`,
		Example: `  # Start with the sample documents
  qlmock play

  # Start from existing files
  qlmock play schema.graphql operations.graphql`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			schemaText := playground.SampleSchema
			operationsText := playground.SampleOperations

			if len(args) >= 1 {
				bytes, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				schemaText = string(bytes)
			}
			if len(args) == 2 {
				bytes, err := os.ReadFile(args[1])
				if err != nil {
					return err
				}
				operationsText = string(bytes)
			}

			model := tui.NewModel(schemaText, operationsText)
			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("playground crashed: %w", err)
			}
			return nil
		},
	}

	return cmd
}
