// Package executor runs GraphQL operations against a schema whose fields
// are backed by synthetic-data resolvers instead of real ones. Fields with
// a bound generator return its value; everything else falls back to a
// typed placeholder, so any valid operation produces a plausible response
// without a backend.
package executor

import (
	"context"
	"fmt"
	"reflect"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/qlmock/qlmock/pkg/mock"
)

type state struct {
	ctx        context.Context
	schema     *ast.Schema
	document   *ast.QueryDocument
	resolvers  mock.ResolverMap
	variables  map[string]any
	errors     []Error
	errorPaths map[string]bool
}

// Execute parses the operations text and runs its first operation against
// the schema with the given resolver map installed. The schema itself is
// never mutated; the resolver map is consulted alongside it, so one schema
// can back any number of concurrent executions.
//
// Execution has partial-success semantics: field failures null out their
// slot and are reported in the result's error list while sibling fields
// keep their values.
func Execute(ctx context.Context, schema *ast.Schema, resolvers mock.ResolverMap, source string, variables map[string]any) *Result {
	document, err := parser.ParseQuery(&ast.Source{Name: "operations.graphql", Input: source})
	if err != nil {
		return errorResult(err.Error())
	}
	if len(document.Operations) == 0 {
		return errorResult("document contains no executable operations")
	}
	operation := document.Operations[0]

	var rootType *ast.Definition
	switch operation.Operation {
	case ast.Query:
		rootType = schema.Query
	case ast.Mutation:
		rootType = schema.Mutation
	case ast.Subscription:
		rootType = schema.Subscription
	}
	if rootType == nil {
		return errorResult(fmt.Sprintf("schema does not define a root %s type", operation.Operation))
	}

	coerced, err := coerceVariables(operation, variables)
	if err != nil {
		return errorResult(err.Error())
	}

	st := &state{
		ctx:        ctx,
		schema:     schema,
		document:   document,
		resolvers:  resolvers,
		variables:  coerced,
		errorPaths: map[string]bool{},
	}

	data := st.executeSelectionSet(rootType, operation.SelectionSet, Path{})
	if data == nil {
		return &Result{Data: nil, Errors: st.errors}
	}
	return &Result{Data: data, Errors: st.errors}
}

// coerceVariables fills the operation's variables from the provided values
// and declared defaults. A missing non-null variable without a default
// fails the request before any field executes.
func coerceVariables(operation *ast.OperationDefinition, provided map[string]any) (map[string]any, error) {
	variables := map[string]any{}
	for _, def := range operation.VariableDefinitions {
		if value, ok := provided[def.Variable]; ok {
			variables[def.Variable] = value
			continue
		}
		if def.DefaultValue != nil {
			value, err := def.DefaultValue.Value(nil)
			if err != nil {
				return nil, fmt.Errorf("invalid default for variable $%s: %w", def.Variable, err)
			}
			variables[def.Variable] = value
			continue
		}
		if def.Type.NonNull {
			return nil, fmt.Errorf("variable $%s is required but was not provided", def.Variable)
		}
	}
	return variables, nil
}

// executeSelectionSet produces the response object for one selection set.
// A non-null child that completes to null makes the whole object null so
// the violation propagates to the nearest nullable ancestor; at the root
// the field slot itself is written as null instead.
func (st *state) executeSelectionSet(objectType *ast.Definition, selectionSet ast.SelectionSet, path Path) map[string]any {
	grouped := st.collectFields(objectType, selectionSet)
	result := make(map[string]any, len(grouped.ordered()))

	for _, group := range grouped.ordered() {
		fieldPath := appendPath(path, group.ResponseName)
		field := group.Fields[0]

		if field.Name == "__typename" {
			result[group.ResponseName] = objectType.Name
			continue
		}

		fieldDef := objectType.Fields.ForName(field.Name)
		if fieldDef == nil {
			st.addError(fieldPath, fmt.Sprintf("cannot query field %q on type %q", field.Name, objectType.Name))
			continue
		}

		value := st.executeField(objectType, fieldDef, group.Fields, fieldPath)

		if fieldDef.Type.NonNull && value == nil {
			if len(path) > 0 {
				return nil
			}
			result[group.ResponseName] = nil
			continue
		}
		result[group.ResponseName] = value
	}
	return result
}

func (st *state) executeField(objectType *ast.Definition, fieldDef *ast.FieldDefinition, fields []*ast.Field, path Path) any {
	if err := st.ctx.Err(); err != nil {
		st.addError(path, "execution canceled: "+err.Error())
		return nil
	}

	var value any
	resolved := false
	if gen, ok := st.resolvers[objectType.Name][fieldDef.Name]; ok {
		resolved = true
		value, _ = st.invoke(objectType.Name, fieldDef.Name, gen, path)
	}
	return st.completeValue(fieldDef.Type, fields, value, resolved, path)
}

// invoke calls a generator, converting a panic into a field error so one
// broken generator cannot take down the whole execution.
func (st *state) invoke(typeName, fieldName string, gen mock.Generator, path Path) (value any, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			st.addError(path, fmt.Sprintf("mock resolver for %s.%s panicked: %v", typeName, fieldName, r))
		}
	}()
	return gen(), true
}

// completeValue turns a resolved (or absent) value into its response form
// for the given declared type. resolved distinguishes "a generator produced
// this value, possibly nil" from "no generator, synthesize a default".
func (st *state) completeValue(typ *ast.Type, fields []*ast.Field, value any, resolved bool, path Path) any {
	if typ.Elem != nil {
		return st.completeListValue(typ, fields, value, resolved, path)
	}

	if resolved && value == nil {
		if typ.NonNull {
			st.addNonNullError(path)
		}
		return nil
	}

	def := st.schema.Types[typ.NamedType]
	if def == nil {
		st.addError(path, fmt.Sprintf("unknown type %q", typ.NamedType))
		return nil
	}

	switch def.Kind {
	case ast.Scalar, ast.Enum:
		if resolved {
			return value
		}
		return defaultLeafValue(def)
	case ast.Object:
		if obj := st.executeSelectionSet(def, mergeSelectionSets(fields), path); obj != nil {
			return obj
		}
		// A nil map must come back as an untyped nil so non-null
		// propagation sees it.
		return nil
	case ast.Interface, ast.Union:
		concrete := st.firstPossibleType(typ.NamedType)
		if concrete == nil {
			st.addError(path, fmt.Sprintf("abstract type %q has no object types to mock", typ.NamedType))
			return nil
		}
		if obj := st.executeSelectionSet(concrete, mergeSelectionSets(fields), path); obj != nil {
			return obj
		}
		return nil
	default:
		st.addError(path, fmt.Sprintf("cannot execute a selection on %s type %q", def.Kind, def.Name))
		return nil
	}
}

func (st *state) completeListValue(listType *ast.Type, fields []*ast.Field, value any, resolved bool, path Path) any {
	var items []any
	if resolved {
		if value == nil {
			if listType.NonNull {
				st.addNonNullError(path)
			}
			return nil
		}
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice {
			// Scalar generator on a list field: wrap it so the annotation
			// still shows up in the output.
			items = []any{value}
		} else {
			items = make([]any, rv.Len())
			for i := 0; i < rv.Len(); i++ {
				items[i] = rv.Index(i).Interface()
			}
		}
	} else {
		items = make([]any, defaultListLength)
	}

	completed := make([]any, len(items))
	for i, item := range items {
		itemPath := appendPath(path, i)
		v := st.completeValue(listType.Elem, fields, item, resolved, itemPath)
		if listType.Elem.NonNull && v == nil {
			return nil
		}
		completed[i] = v
	}
	return completed
}

// firstPossibleType picks a deterministic concrete type for an abstract
// type: the alphabetically first object in its possible-types set.
func (st *state) firstPossibleType(name string) *ast.Definition {
	possible := st.schema.PossibleTypes[name]
	var pick *ast.Definition
	for _, def := range possible {
		if def.Kind != ast.Object {
			continue
		}
		if pick == nil || def.Name < pick.Name {
			pick = def
		}
	}
	return pick
}

func (st *state) addError(path Path, message string) {
	st.errors = append(st.errors, Error{Message: message, Path: path})
	st.errorPaths[path.String()] = true
}

// addNonNullError records the null-for-non-null violation unless the field
// already failed for a more specific reason at the same path.
func (st *state) addNonNullError(path Path) {
	if st.errorPaths[path.String()] {
		return
	}
	st.addError(path, fmt.Sprintf("cannot return null for non-nullable field %s", path))
}
