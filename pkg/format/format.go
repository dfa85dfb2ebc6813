// Package format pretty-prints GraphQL documents into their canonical form.
// Formatting parses first, so broken input is rejected rather than mangled;
// callers that want "best effort, leave it alone on failure" semantics keep
// their original text when an error comes back.
package format

import (
	"bytes"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"
)

const indent = "  "

// Schema formats a type-system document (SDL) with two-space indentation.
// Descriptions, including generator annotations, survive the round trip.
func Schema(src string) (string, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: "schema.graphql", Input: src})
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	formatter.NewFormatter(&buf, formatter.WithIndent(indent)).FormatSchemaDocument(doc)
	return buf.String(), nil
}

// Operations formats an executable document with two-space indentation.
func Operations(src string) (string, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: "operations.graphql", Input: src})
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	formatter.NewFormatter(&buf, formatter.WithIndent(indent)).FormatQueryDocument(doc)
	return buf.String(), nil
}
