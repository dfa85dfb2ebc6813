/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/qlmock/qlmock/pkg/diagnostic"
	"github.com/qlmock/qlmock/pkg/playground"
	"github.com/qlmock/qlmock/pkg/render"
	"github.com/spf13/cobra"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// ErrCheckFailed is returned when the check finds anything wrong: a broken
// pane, a pane holding the wrong kind of document, or validation errors.
// This is a sentinel error that causes exit code 1 without implying the
// command itself failed.
var ErrCheckFailed = errors.New("check failed")

// Validation Error Display
//
// gqlparser returns errors with a Rule name (e.g., "FieldsOnCorrectType")
// and a start position only, no span. For known rules we parse the message
// to recover the offending token and underline its full length, plus a
// "did you mean" suggestion; everything else gets a single caret.

// Example: Cannot query field "badField" on type "Query".
var fieldsOnCorrectTypeRegex = regexp.MustCompile(`Cannot query field "([^"]+)" on type "([^"]+)"`)

func parseFieldsOnCorrectTypeError(message string) (fieldName, typeName string) {
	matches := fieldsOnCorrectTypeRegex.FindStringSubmatch(message)
	if len(matches) == 3 {
		return matches[1], matches[2]
	}
	return "", ""
}

func errorSpanLength(err *gqlerror.Error) int {
	switch err.Rule {
	case "FieldsOnCorrectType":
		fieldName, _ := parseFieldsOnCorrectTypeError(err.Message)
		if fieldName != "" {
			return len(fieldName)
		}
	}
	return 1
}

func errorSuggestion(err *gqlerror.Error, schema *ast.Schema) string {
	if schema == nil {
		return ""
	}
	switch err.Rule {
	case "FieldsOnCorrectType":
		fieldName, typeName := parseFieldsOnCorrectTypeError(err.Message)
		if fieldName == "" || typeName == "" {
			return ""
		}
		typeDef := schema.Types[typeName]
		if typeDef == nil {
			return ""
		}
		closest := findClosest(fieldName, pluck(typeDef.Fields, func(f *ast.FieldDefinition) string { return f.Name }))
		if closest != "" {
			return fmt.Sprintf("did you mean `%s`?", closest)
		}
	}
	return ""
}

func renderErrorList(sourceName, source string, errs gqlerror.List, schema *ast.Schema) string {
	var out string
	for _, err := range errs {
		out += diagnostic.RenderGQLError(sourceName, source, err, errorSpanLength(err), errorSuggestion(err, schema))
	}
	return out
}

func paneReport(status playground.Status, errs gqlerror.List) PaneReport {
	switch status {
	case playground.StatusAccepted:
		return PaneReport{Status: "ok"}
	case playground.StatusNotApplicable:
		return PaneReport{Status: "not_applicable"}
	default:
		return PaneReport{Status: "invalid", Errors: convertGQLErrors(errs)}
	}
}

func formatCheckText(session *playground.Session, schemaName, operationsName string) string {
	var out string

	switch session.SchemaStatus() {
	case playground.StatusAccepted:
		out += "✓ Schema is valid\n"
	case playground.StatusNotApplicable:
		out += fmt.Sprintf("• %s does not contain type definitions (not a schema document)\n", schemaName)
	default:
		errs := session.SchemaErrors()
		out += fmt.Sprintf("✗ Schema has %s:\n", pluralize(len(errs), "error"))
		out += renderErrorList(schemaName, session.SchemaText(), errs, nil)
	}

	switch session.OperationsStatus() {
	case playground.StatusAccepted:
		out += "✓ Operations document is well-formed\n"
	case playground.StatusNotApplicable:
		out += fmt.Sprintf("• %s does not contain executable definitions (not an operations document)\n", operationsName)
	default:
		errs := session.OperationsErrors()
		out += fmt.Sprintf("✗ Operations document has %s:\n", pluralize(len(errs), "error"))
		out += renderErrorList(operationsName, session.OperationsText(), errs, nil)
	}

	crossErrs, ran := session.CrossValidation()
	switch {
	case !ran:
		out += "• Cross-validation skipped: it needs a valid schema and a well-formed operations document\n"
	case len(crossErrs) == 0:
		out += "✓ Operations are compatible with the schema\n"
	default:
		out += fmt.Sprintf("✗ Found %s:\n", pluralize(len(crossErrs), "validation error"))
		out += renderErrorList(operationsName, session.OperationsText(), crossErrs, session.Schema())
	}

	return out
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [operations-file]",
		Short: "Classify both documents and cross-validate them",
		Long: `Checks the schema file and an operations document independently, then
validates the operations against the schema when both are usable.

The two documents are classified separately: a file holding the wrong kind
of document (operations where a schema should be, or vice versa) is
reported as such rather than as a syntax error. Cross-validation runs only
when the schema compiles and the operations parse; otherwise it is
reported as skipped, not as passed.

The operations document can be a file path argument or piped via stdin.

Exit codes:
  0 - Everything checks out
  1 - A document is broken, of the wrong kind, or incompatible

Output formats:
  text    Human-readable per-pane results with source snippets
  json    {"schema": {...}, "operations": {...}, "validation": {...}}`,
		Example: `  # Check a query file against ./schema.graphql
  qlmock check query.graphql

  # Check from stdin against a specific schema
  echo "query { student { name } }" | qlmock check -s school.graphql

  # JSON report for CI
  qlmock check query.graphql -f json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCheckCmd,
	}

	return cmd
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	schemaText, err := loadSchemaText()
	if err != nil {
		return err
	}
	operationsText, operationsName, err := readOperations(cmd, args)
	if err != nil {
		return err
	}

	session := playground.NewSession(nil)
	session.SetSchemaText(schemaText)
	session.SetOperationsText(operationsText)

	if failure := session.ValidatorFailure(); failure != nil {
		return failure
	}

	report := CheckReport{
		Schema:     paneReport(session.SchemaStatus(), session.SchemaErrors()),
		Operations: paneReport(session.OperationsStatus(), session.OperationsErrors()),
	}
	crossErrs, ran := session.CrossValidation()
	if ran {
		report.Validation = &ValidationReport{
			Valid:  len(crossErrs) == 0,
			Errors: convertGQLErrors(crossErrs),
		}
	}

	switch outputFormat {
	case render.FormatJSON:
		output, err := render.JSONValue(report)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), output)
	default:
		fmt.Fprint(cmd.OutOrStdout(), formatCheckText(session, schemaFilePath, operationsName))
	}

	ok := report.Schema.Status == "ok" &&
		report.Operations.Status == "ok" &&
		report.Validation != nil && report.Validation.Valid
	if !ok {
		return ErrCheckFailed
	}
	return nil
}
