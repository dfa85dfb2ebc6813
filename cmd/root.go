/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bytes"
	"os"

	"github.com/qlmock/qlmock/pkg/render"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	schemaFilePath string
	outputFormat   render.Format
)

func formatFlag() string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return string(render.FormatPretty)
	}
	return string(render.FormatText)
}

// NewRootCmd creates and returns the root command with all subcommands attached.
// This function creates a fresh command tree, ensuring no state leaks between invocations.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qlmock",
		Short: "Validate GraphQL operations and execute them against mocked data",
		Long: `qlmock is a GraphQL playground without a backend. It validates a schema
and a set of operations against each other, then executes the operations
using synthetic data derived from generator annotations in the schema.

A field description of the form "namespace.function" binds that field to a
data generator, e.g.:

  type Student {
    id: ID!
    """name.firstName"""
    name: String!
  }

Fields without an annotation get a placeholder value matching their
declared type. Run 'qlmock generators' to list everything available.

By default, qlmock reads the schema from ./schema.graphql; use -s for a
different file. Operations are read from a file argument or from stdin.`,
		Example: `  # Check schema, operations, and their compatibility
  qlmock check operations.graphql

  # Execute operations against mocked data
  qlmock run operations.graphql

  # Reformat documents into canonical form
  qlmock fmt -w schema.graphql operations.graphql

  # Open the interactive playground
  qlmock play

  # List generator annotations usable in field descriptions
  qlmock generators -f json | jq '.[].namespace' | sort -u`,
	}

	// Persistent flags
	cmd.PersistentFlags().StringVarP(&schemaFilePath, "schema", "s", "schema.graphql", "File path of GraphQL schema")

	var formatStr string
	cmd.PersistentFlags().StringVarP(&formatStr, "format", "f", formatFlag(), "Output format: json, text, pretty (default: pretty if interactive, text otherwise)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		outputFormat, err = render.ParseFormat(formatStr)
		return err
	}

	// Add all subcommands
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewFmtCmd())
	cmd.AddCommand(NewGeneratorsCmd())
	cmd.AddCommand(NewPlayCmd())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// ExecuteWithArgs runs the CLI with the given arguments and returns stdout, stderr, and any error.
// This is useful for testing.
func ExecuteWithArgs(args []string) (stdout string, stderr string, err error) {
	return ExecuteWithArgsAndStdin(args, nil)
}

// ExecuteWithArgsAndStdin runs the CLI with the given arguments and stdin, returns stdout, stderr, and any error.
// This is useful for testing commands that read from stdin.
func ExecuteWithArgsAndStdin(args []string, stdin *bytes.Buffer) (stdout string, stderr string, err error) {
	cmd := NewRootCmd()

	stdoutBuf := new(bytes.Buffer)
	stderrBuf := new(bytes.Buffer)

	cmd.SetOut(stdoutBuf)
	cmd.SetErr(stderrBuf)
	cmd.SetArgs(args)
	if stdin != nil {
		cmd.SetIn(stdin)
	}

	err = cmd.Execute()

	return stdoutBuf.String(), stderrBuf.String(), err
}
