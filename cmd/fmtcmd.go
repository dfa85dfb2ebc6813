/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/qlmock/qlmock/pkg/format"
	"github.com/spf13/cobra"
)

// formatDocument formats src with whichever grammar accepts it: schema
// first, then operations. Mixed or broken documents return the schema
// grammar's error, which is the more useful of the two for SDL-ish input.
func formatDocument(src string) (string, error) {
	out, schemaErr := format.Schema(src)
	if schemaErr == nil {
		return out, nil
	}
	out, operationsErr := format.Operations(src)
	if operationsErr == nil {
		return out, nil
	}
	return "", schemaErr
}

func NewFmtCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Reformat GraphQL documents into canonical form",
		Long: `Formats schema and operations documents with two-space indentation.
Each file is parsed with whichever grammar accepts it, so schemas and
operations can be mixed in one invocation. Formatting is idempotent:
already-canonical input comes back byte-identical.

With no files, reads from stdin and writes to stdout. With -w, files are
rewritten in place instead of printed.`,
		Example: `  # Print a formatted schema
  qlmock fmt schema.graphql

  # Rewrite both documents in place
  qlmock fmt -w schema.graphql operations.graphql

  # Format from stdin
  echo "query{student{name}}" | qlmock fmt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				src, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read from stdin: %w", err)
				}
				out, err := formatDocument(string(src))
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}

			for _, path := range args {
				src, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				out, err := formatDocument(string(src))
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if write {
					if err := os.WriteFile(path, []byte(out), 0644); err != nil {
						return err
					}
					continue
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write result to source files instead of stdout")

	return cmd
}
