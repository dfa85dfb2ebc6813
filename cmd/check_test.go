package cmd_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qlmock/qlmock/cmd"
)

const testSchema = `type Query {
  student: Student!
}

type Student {
  id: ID!
  """name.firstName"""
  name: String!
}
`

const testOperations = `query {
  student {
    id
    name
  }
}
`

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCheckCmd_AllValid(t *testing.T) {
	schemaPath := writeTestFile(t, "schema.graphql", testSchema)
	opsPath := writeTestFile(t, "query.graphql", testOperations)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"check", opsPath, "-s", schemaPath})

	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ Schema is valid")
	assert.Contains(t, stdout, "✓ Operations document is well-formed")
	assert.Contains(t, stdout, "✓ Operations are compatible with the schema")
}

func TestCheckCmd_ReadsOperationsFromStdin(t *testing.T) {
	schemaPath := writeTestFile(t, "schema.graphql", testSchema)

	stdout, _, err := cmd.ExecuteWithArgsAndStdin(
		[]string{"check", "-s", schemaPath},
		bytes.NewBufferString(testOperations))

	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ Operations are compatible with the schema")
}

func TestCheckCmd_UnknownField(t *testing.T) {
	schemaPath := writeTestFile(t, "schema.graphql", testSchema)
	opsPath := writeTestFile(t, "query.graphql", "query { student { nam } }")

	stdout, _, err := cmd.ExecuteWithArgs([]string{"check", opsPath, "-s", schemaPath})

	assert.ErrorIs(t, err, cmd.ErrCheckFailed)
	assert.Contains(t, stdout, "✓ Schema is valid")
	assert.Contains(t, stdout, "✗ Found 1 validation error")
	assert.Contains(t, stdout, "-->")
	assert.Contains(t, stdout, "did you mean `name`?")
}

func TestCheckCmd_MalformedSchema(t *testing.T) {
	schemaPath := writeTestFile(t, "schema.graphql", "type Query {")
	opsPath := writeTestFile(t, "query.graphql", testOperations)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"check", opsPath, "-s", schemaPath})

	assert.ErrorIs(t, err, cmd.ErrCheckFailed)
	assert.Contains(t, stdout, "✗ Schema has 1 error")
	assert.Contains(t, stdout, "Cross-validation skipped")
}

func TestCheckCmd_SwappedDocuments(t *testing.T) {
	schemaPath := writeTestFile(t, "schema.graphql", testOperations)
	opsPath := writeTestFile(t, "query.graphql", testSchema)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"check", opsPath, "-s", schemaPath})

	assert.ErrorIs(t, err, cmd.ErrCheckFailed)
	assert.Contains(t, stdout, "not a schema document")
	assert.Contains(t, stdout, "not an operations document")
	assert.Contains(t, stdout, "Cross-validation skipped")
}

func TestCheckCmd_JSONReport(t *testing.T) {
	schemaPath := writeTestFile(t, "schema.graphql", testSchema)
	opsPath := writeTestFile(t, "query.graphql", testOperations)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"check", opsPath, "-s", schemaPath, "-f", "json"})

	require.NoError(t, err)
	var report struct {
		Schema struct {
			Status string `json:"status"`
		} `json:"schema"`
		Operations struct {
			Status string `json:"status"`
		} `json:"operations"`
		Validation *struct {
			Valid bool `json:"valid"`
		} `json:"validation"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, "ok", report.Schema.Status)
	assert.Equal(t, "ok", report.Operations.Status)
	require.NotNil(t, report.Validation)
	assert.True(t, report.Validation.Valid)
}

func TestCheckCmd_JSONReport_OmitsSkippedValidation(t *testing.T) {
	schemaPath := writeTestFile(t, "schema.graphql", testSchema)
	opsPath := writeTestFile(t, "query.graphql", "query { student ")

	stdout, _, err := cmd.ExecuteWithArgs([]string{"check", opsPath, "-s", schemaPath, "-f", "json"})

	assert.ErrorIs(t, err, cmd.ErrCheckFailed)
	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.NotContains(t, report, "validation",
		"skipped validation is absent, not reported as passed")
}

func TestCheckCmd_MissingSchemaFile(t *testing.T) {
	opsPath := writeTestFile(t, "query.graphql", testOperations)

	_, _, err := cmd.ExecuteWithArgs([]string{"check", opsPath, "-s", "/nonexistent/schema.graphql"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file does not exist")
}

func TestCheckCmd_InvalidFormatFlag(t *testing.T) {
	schemaPath := writeTestFile(t, "schema.graphql", testSchema)
	opsPath := writeTestFile(t, "query.graphql", testOperations)

	_, _, err := cmd.ExecuteWithArgs([]string{"check", opsPath, "-s", schemaPath, "-f", "yaml"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
