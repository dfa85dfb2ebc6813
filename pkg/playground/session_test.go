package playground

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qlmock/qlmock/pkg/mock"
)

func newTestSession() *Session {
	return NewSession(mock.Faker())
}

func TestSession_FreshSessionIsEmpty(t *testing.T) {
	s := newTestSession()

	assert.Equal(t, StatusNotApplicable, s.SchemaStatus())
	assert.Equal(t, StatusNotApplicable, s.OperationsStatus())
	_, ran := s.CrossValidation()
	assert.False(t, ran)
	assert.Nil(t, s.Result())
}

func TestSession_SetSchemaText_Accepted(t *testing.T) {
	s := newTestSession()
	s.SetSchemaText(validSchema)

	assert.Equal(t, StatusAccepted, s.SchemaStatus())
	assert.NotNil(t, s.Schema())
	assert.Empty(t, s.SchemaErrors())
}

func TestSession_PaneIsolation(t *testing.T) {
	s := newTestSession()
	s.SetSchemaText(validSchema)
	s.SetOperationsText(validOperations)
	require.Equal(t, StatusAccepted, s.OperationsStatus())

	// Breaking the schema must not disturb the operations pane.
	s.SetSchemaText("type Query {")

	assert.Equal(t, StatusMalformed, s.SchemaStatus())
	assert.Equal(t, StatusAccepted, s.OperationsStatus())
	assert.Empty(t, s.OperationsErrors())
}

func TestSession_CrossValidationRequiresBothPanes(t *testing.T) {
	s := newTestSession()
	s.SetSchemaText(validSchema)

	_, ran := s.CrossValidation()
	assert.False(t, ran, "validation must not run with only a schema")

	s.SetOperationsText(validOperations)
	errs, ran := s.CrossValidation()
	assert.True(t, ran)
	assert.Empty(t, errs)
}

func TestSession_CrossValidationFindsUnknownField(t *testing.T) {
	s := newTestSession()
	s.SetSchemaText(validSchema)
	s.SetOperationsText("query { nope }")

	errs, ran := s.CrossValidation()
	require.True(t, ran)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "nope")
}

func TestSession_CrossValidationDiscardedWhenPaneBreaks(t *testing.T) {
	s := newTestSession()
	s.SetSchemaText(validSchema)
	s.SetOperationsText("query { nope }")
	_, ran := s.CrossValidation()
	require.True(t, ran)

	s.SetOperationsText("query { nope ")

	errs, ran := s.CrossValidation()
	assert.False(t, ran, "a malformed pane leaves no artifact to validate")
	assert.Empty(t, errs)
}

func TestSession_WholesaleReplacement(t *testing.T) {
	s := newTestSession()
	s.SetSchemaText("type Query { hello: String }")
	s.SetSchemaText("type Query { goodbye: Int }")

	require.Equal(t, StatusAccepted, s.SchemaStatus())
	schema := s.Schema()
	assert.Nil(t, schema.Query.Fields.ForName("hello"))
	assert.NotNil(t, schema.Query.Fields.ForName("goodbye"))
}

func TestSession_PrepareExecution_NoSchema(t *testing.T) {
	s := newTestSession()
	s.SetOperationsText(validOperations)

	_, err := s.PrepareExecution()
	assert.ErrorIs(t, err, ErrNoSchema)
}

func TestSession_PrepareExecution_BadAnnotation(t *testing.T) {
	s := newTestSession()
	s.SetSchemaText(`type Query { student: Student }
type Student {
  """bogus.nothing"""
  name: String!
}
`)
	require.Equal(t, StatusAccepted, s.SchemaStatus())

	_, err := s.PrepareExecution()
	var resolverErr *mock.ResolverError
	require.ErrorAs(t, err, &resolverErr)
	assert.Equal(t, "Student", resolverErr.Type)
	assert.Equal(t, "name", resolverErr.Field)
}

func TestSession_ExecuteAndCommit(t *testing.T) {
	s := newTestSession()
	s.SetSchemaText(SampleSchema)
	s.SetOperationsText(SampleOperations)

	execution, err := s.PrepareExecution()
	require.NoError(t, err)

	result := execution.Run(context.Background())
	require.NotNil(t, result)
	assert.False(t, result.HasErrors())

	assert.True(t, s.Commit(execution, result))
	assert.Same(t, result, s.Result())

	data, ok := result.Data.(map[string]any)
	require.True(t, ok)
	student, ok := data["student"].(map[string]any)
	require.True(t, ok)
	name, ok := student["name"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, name)
}

func TestSession_StaleExecutionIsDropped(t *testing.T) {
	s := newTestSession()
	s.SetSchemaText(SampleSchema)
	s.SetOperationsText(SampleOperations)

	first, err := s.PrepareExecution()
	require.NoError(t, err)
	second, err := s.PrepareExecution()
	require.NoError(t, err)

	secondResult := second.Run(context.Background())
	require.True(t, s.Commit(second, secondResult))

	firstResult := first.Run(context.Background())
	assert.False(t, s.Commit(first, firstResult), "older execution must lose")
	assert.Same(t, secondResult, s.Result())
}

func TestSession_LastStartedWins(t *testing.T) {
	s := newTestSession()
	s.SetSchemaText(SampleSchema)
	s.SetOperationsText(SampleOperations)

	first, err := s.PrepareExecution()
	require.NoError(t, err)
	second, err := s.PrepareExecution()
	require.NoError(t, err)

	// Completion order is the reverse of start order; the later start
	// still wins because it holds the current token.
	require.True(t, s.Commit(second, second.Run(context.Background())))
	assert.False(t, s.Commit(first, first.Run(context.Background())))
}

func TestSession_Prettify(t *testing.T) {
	s := newTestSession()
	s.SetSchemaText("type Query {   hello:String }")
	s.SetOperationsText("query{hello}")

	s.Prettify()

	assert.Contains(t, s.SchemaText(), "hello: String")
	assert.Contains(t, s.OperationsText(), "query {")
	assert.Equal(t, StatusAccepted, s.SchemaStatus())
	assert.Equal(t, StatusAccepted, s.OperationsStatus())
}

func TestSession_PrettifyLeavesBrokenTextAlone(t *testing.T) {
	s := newTestSession()
	broken := "type Query { hello "
	s.SetSchemaText(broken)

	s.Prettify()

	assert.Equal(t, broken, s.SchemaText())
	assert.Equal(t, StatusMalformed, s.SchemaStatus())
}

func TestSession_SampleTextsAreValid(t *testing.T) {
	s := newTestSession()
	s.SetSchemaText(SampleSchema)
	s.SetOperationsText(SampleOperations)

	assert.Equal(t, StatusAccepted, s.SchemaStatus())
	assert.Equal(t, StatusAccepted, s.OperationsStatus())
	errs, ran := s.CrossValidation()
	assert.True(t, ran)
	assert.Empty(t, errs)
}
