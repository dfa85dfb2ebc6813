// Package playground is the validation pipeline behind the mock playground:
// it classifies raw text into schema or operation documents, cross-validates
// operations against the current schema, and coordinates mocked execution.
//
// Classification is three-way. A pane holding the wrong kind of document is
// not an error state, it is an incomplete one (the user may be mid-edit or
// may have pasted operations into the schema pane), so "not applicable" is
// kept distinct from "broken".
package playground

import (
	"strings"

	gqlparser "github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"
)

// Status is the outcome of classifying one pane's text.
type Status int

const (
	// StatusAccepted means the text is a well-formed document of the kind
	// this pane expects and the artifact is available.
	StatusAccepted Status = iota
	// StatusNotApplicable means the text parses as the other kind of
	// document (or is blank): not yet usable here, but not broken.
	StatusNotApplicable
	// StatusMalformed means the text has syntax or semantic errors.
	StatusMalformed
)

func (s Status) String() string {
	switch s {
	case StatusAccepted:
		return "accepted"
	case StatusNotApplicable:
		return "not applicable"
	case StatusMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// SchemaResult is the outcome of classifying schema-pane text.
type SchemaResult struct {
	Status Status
	Schema *ast.Schema
	Errors gqlerror.List
}

// OperationsResult is the outcome of classifying operations-pane text.
type OperationsResult struct {
	Status   Status
	Document *ast.QueryDocument
	Errors   gqlerror.List
}

// ClassifySchema parses text as SDL and, when every definition is a
// type-system definition, compiles it into an executable schema. The
// compiled schema is internally consistent: every referenced type exists
// and a root Query type is present. Semantic defects come back as a list,
// not a single error.
func ClassifySchema(text string) SchemaResult {
	if strings.TrimSpace(text) == "" {
		return SchemaResult{Status: StatusNotApplicable}
	}

	source := &ast.Source{Name: "schema.graphql", Input: text}
	if _, err := parser.ParseSchema(source); err != nil {
		if parsesAsOperations(text) {
			return SchemaResult{Status: StatusNotApplicable}
		}
		return SchemaResult{Status: StatusMalformed, Errors: errorList(err)}
	}

	schema, err := gqlparser.LoadSchema(source)
	if err != nil {
		return SchemaResult{Status: StatusMalformed, Errors: errorList(err)}
	}
	if schema.Query == nil {
		return SchemaResult{
			Status: StatusMalformed,
			Errors: gqlerror.List{gqlerror.Errorf("schema does not define a root Query type")},
		}
	}
	return SchemaResult{Status: StatusAccepted, Schema: schema}
}

// ClassifyOperations parses text as an executable document. The grammar
// admits only query/mutation/subscription/fragment definitions, so a
// successful parse is a successful classification.
func ClassifyOperations(text string) OperationsResult {
	if strings.TrimSpace(text) == "" {
		return OperationsResult{Status: StatusNotApplicable}
	}

	source := &ast.Source{Name: "operations.graphql", Input: text}
	document, err := parser.ParseQuery(source)
	if err != nil {
		if parsesAsSchema(text) {
			return OperationsResult{Status: StatusNotApplicable}
		}
		return OperationsResult{Status: StatusMalformed, Errors: errorList(err)}
	}
	return OperationsResult{Status: StatusAccepted, Document: document}
}

// parsesAsOperations reports whether text is a valid executable document,
// used to tell "wrong kind of document" apart from "broken document".
func parsesAsOperations(text string) bool {
	_, err := parser.ParseQuery(&ast.Source{Name: "operations.graphql", Input: text})
	return err == nil
}

func parsesAsSchema(text string) bool {
	_, err := parser.ParseSchema(&ast.Source{Name: "schema.graphql", Input: text})
	return err == nil
}
