/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/qlmock/qlmock/pkg/mock"
	"github.com/qlmock/qlmock/pkg/playground"
	"github.com/qlmock/qlmock/pkg/render"
	"github.com/spf13/cobra"
)

// ErrRunBlocked is returned when execution cannot start: the schema or the
// operations document is unusable, or a generator annotation does not
// resolve. Execution-time field errors do not trip it; they are part of the
// result envelope.
var ErrRunBlocked = errors.New("run blocked")

func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [operations-file]",
		Short: "Execute operations against the schema with mocked data",
		Long: `Executes the first operation of a document against the schema, with every
field resolved to synthetic data.

Fields whose description is a generator reference ("namespace.function")
produce that generator's value; all other fields produce a placeholder
matching their declared type. A reference that does not resolve aborts the
run before execution; partial mock data would be worse than an explicit
failure.

The result envelope is printed as JSON: {"data": ..., "errors": [...]}.
Execution has partial-success semantics, so both keys may be present.

Exit codes:
  0 - Execution produced a result (possibly with field errors inside)
  1 - Execution could not start`,
		Example: `  # Run a query against ./schema.graphql
  qlmock run query.graphql

  # Run from stdin
  echo "query { student { name } }" | qlmock run -s school.graphql`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRunCmd,
	}

	return cmd
}

func runRunCmd(cmd *cobra.Command, args []string) error {
	schemaText, err := loadSchemaText()
	if err != nil {
		return err
	}
	operationsText, operationsName, err := readOperations(cmd, args)
	if err != nil {
		return err
	}

	session := playground.NewSession(mock.Faker())
	session.SetSchemaText(schemaText)
	session.SetOperationsText(operationsText)

	if session.SchemaStatus() != playground.StatusAccepted {
		fmt.Fprint(cmd.ErrOrStderr(), formatCheckText(session, schemaFilePath, operationsName))
		return fmt.Errorf("%w: %s is not a valid schema", ErrRunBlocked, schemaFilePath)
	}
	if session.OperationsStatus() != playground.StatusAccepted {
		fmt.Fprint(cmd.ErrOrStderr(), formatCheckText(session, schemaFilePath, operationsName))
		return fmt.Errorf("%w: %s is not an operations document", ErrRunBlocked, operationsName)
	}

	execution, err := session.PrepareExecution()
	if err != nil {
		var resolverErr *mock.ResolverError
		if errors.As(err, &resolverErr) {
			return fmt.Errorf("%w: %s", ErrRunBlocked, resolverErr)
		}
		return err
	}

	result := execution.Run(cmd.Context())
	session.Commit(execution, result)

	output, err := render.JSONValue(result)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
