package mock

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gqlparser "github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

func loadSchema(t *testing.T, sdl string) *ast.Schema {
	t.Helper()
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: sdl})
	require.NoError(t, err)
	return schema
}

const annotatedSDL = `type Query {
  student: Student!
  school: School!
}

type Student {
  id: ID!
  """name.firstName"""
  firstName: String!
  """name.lastName"""
  lastName: String!
  """internet.email"""
  email: String!
  gpa: Float
}

type School {
  """company.companyName"""
  name: String!
  """address.city"""
  city: String!
}
`

func TestSynthesize_BindsAnnotatedFields(t *testing.T) {
	schema := loadSchema(t, annotatedSDL)

	resolvers, err := Synthesize(schema, Faker())
	require.NoError(t, err)

	require.Contains(t, resolvers, "Student")
	require.Contains(t, resolvers, "School")

	gen, ok := resolvers["Student"]["firstName"]
	require.True(t, ok)
	name, isString := gen().(string)
	require.True(t, isString)
	assert.NotEmpty(t, name)
}

func TestSynthesize_UnannotatedFieldsAreUnbound(t *testing.T) {
	schema := loadSchema(t, annotatedSDL)

	resolvers, err := Synthesize(schema, Faker())
	require.NoError(t, err)

	_, ok := resolvers["Student"]["id"]
	assert.False(t, ok, "id has no annotation")
	_, ok = resolvers["Student"]["gpa"]
	assert.False(t, ok, "gpa has no annotation")
}

func TestSynthesize_SkipsRootQueryAndIntrospection(t *testing.T) {
	schema := loadSchema(t, `type Query {
  """name.firstName"""
  greeting: String!
  student: Student!
}

type Student {
  id: ID!
}
`)

	resolvers, err := Synthesize(schema, Faker())
	require.NoError(t, err)

	assert.NotContains(t, resolvers, "Query",
		"root type fields are driven by the operation, not mocked at the type")
	for name := range resolvers {
		assert.NotContains(t, name, "__")
	}
}

func TestSynthesize_OnlyObjectTypes(t *testing.T) {
	schema := loadSchema(t, `type Query { student: Student! }

type Student implements Named {
  name: String!
}

interface Named {
  """name.findName"""
  name: String!
}

enum Level { FRESHMAN SENIOR }

input StudentFilter {
  name: String
}
`)

	resolvers, err := Synthesize(schema, Faker())
	require.NoError(t, err)

	assert.NotContains(t, resolvers, "Named")
	assert.NotContains(t, resolvers, "Level")
	assert.NotContains(t, resolvers, "StudentFilter")
	assert.Contains(t, resolvers, "Student")
}

func TestSynthesize_UnknownReferenceAborts(t *testing.T) {
	schema := loadSchema(t, `type Query { student: Student! }

type Student {
  """name.firstName"""
  name: String!
  """bogus.nothing"""
  email: String!
}
`)

	resolvers, err := Synthesize(schema, Faker())
	assert.Nil(t, resolvers, "one bad annotation aborts the whole map")

	var resolverErr *ResolverError
	require.ErrorAs(t, err, &resolverErr)
	assert.Equal(t, "Student", resolverErr.Type)
	assert.Equal(t, "email", resolverErr.Field)
	assert.Equal(t, "bogus.nothing", resolverErr.Reference)
}

func TestSynthesize_MalformedReferenceAborts(t *testing.T) {
	schema := loadSchema(t, `type Query { student: Student! }

type Student {
  """just some prose, not a reference"""
  name: String!
}
`)

	_, err := Synthesize(schema, Faker())
	var resolverErr *ResolverError
	require.ErrorAs(t, err, &resolverErr)
	assert.Equal(t, "just some prose, not a reference", resolverErr.Reference)
	assert.Empty(t, resolverErr.Suggestion)
}

func TestSynthesize_TypoGetsSuggestion(t *testing.T) {
	schema := loadSchema(t, `type Query { student: Student! }

type Student {
  """name.firstNam"""
  name: String!
}
`)

	_, err := Synthesize(schema, Faker())
	var resolverErr *ResolverError
	require.ErrorAs(t, err, &resolverErr)
	assert.Equal(t, "name.firstName", resolverErr.Suggestion)
	assert.Contains(t, resolverErr.Error(), `did you mean "name.firstName"?`)
}

func TestSynthesize_NamespaceTypoGetsSuggestion(t *testing.T) {
	schema := loadSchema(t, `type Query { student: Student! }

type Student {
  """nam.firstName"""
  name: String!
}
`)

	_, err := Synthesize(schema, Faker())
	var resolverErr *ResolverError
	require.ErrorAs(t, err, &resolverErr)
	assert.Equal(t, "name.firstName", resolverErr.Suggestion)
}

func TestSynthesize_Deterministic(t *testing.T) {
	schema := loadSchema(t, annotatedSDL)

	first, err := Synthesize(schema, Faker())
	require.NoError(t, err)
	second, err := Synthesize(schema, Faker())
	require.NoError(t, err)

	keys := func(m ResolverMap) map[string][]string {
		out := map[string][]string{}
		for typeName, fields := range m {
			var names []string
			for fieldName := range fields {
				names = append(names, fieldName)
			}
			sort.Strings(names)
			out[typeName] = names
		}
		return out
	}
	if diff := cmp.Diff(keys(first), keys(second)); diff != "" {
		t.Errorf("resolver maps differ (-first +second):\n%s", diff)
	}
}
