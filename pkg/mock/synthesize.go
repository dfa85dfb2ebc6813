package mock

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/vektah/gqlparser/v2/ast"
)

// ResolverMap maps object type name to field name to the generator bound to
// that field. Only fields carrying a generator annotation appear; everything
// else falls through to the executor's default mock policy.
type ResolverMap map[string]map[string]Generator

// ResolverError reports a generator annotation that does not resolve.
// Synthesis is all-or-nothing, so a single bad annotation carries the whole
// map down with it; partial mock data masquerading as complete would be the
// worse failure mode.
type ResolverError struct {
	Type       string
	Field      string
	Reference  string
	Suggestion string
}

func (e *ResolverError) Error() string {
	msg := fmt.Sprintf("invalid generator reference %q on %s.%s", e.Reference, e.Type, e.Field)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(", did you mean %q?", e.Suggestion)
	}
	return msg
}

// ParseReference splits a field description into its namespace and function
// components. The split happens on the first dot; both components must be
// non-empty.
func ParseReference(description string) (namespace, function string, ok bool) {
	namespace, function, found := strings.Cut(description, ".")
	if !found || namespace == "" || function == "" {
		return "", "", false
	}
	return namespace, function, true
}

// Synthesize derives a ResolverMap from a compiled schema's type map.
// Object types are considered, except the root Query type and the
// double-underscore introspection types. Every field with a non-empty
// description must carry a resolvable generator reference; the first
// failure (by sorted type name, then field order) aborts synthesis.
func Synthesize(schema *ast.Schema, reg Registry) (ResolverMap, error) {
	names := make([]string, 0, len(schema.Types))
	for name := range schema.Types {
		names = append(names, name)
	}
	sort.Strings(names)

	resolvers := ResolverMap{}
	for _, name := range names {
		def := schema.Types[name]
		if def.Kind != ast.Object {
			continue
		}
		if schema.Query != nil && name == schema.Query.Name {
			continue
		}
		if strings.Contains(name, "__") {
			continue
		}

		fields := map[string]Generator{}
		for _, field := range def.Fields {
			if field.Description == "" {
				continue
			}
			gen, err := resolveReference(reg, name, field.Name, field.Description)
			if err != nil {
				return nil, err
			}
			fields[field.Name] = gen
		}
		resolvers[name] = fields
	}
	return resolvers, nil
}

func resolveReference(reg Registry, typeName, fieldName, description string) (Generator, error) {
	namespace, function, ok := ParseReference(description)
	if !ok {
		return nil, &ResolverError{Type: typeName, Field: fieldName, Reference: description}
	}

	gen, found := reg.Resolve(namespace, function)
	if !found {
		return nil, &ResolverError{
			Type:       typeName,
			Field:      fieldName,
			Reference:  description,
			Suggestion: suggestReference(reg, namespace, function),
		}
	}
	return gen, nil
}

const maxSuggestionDistance = 5

// suggestReference finds the closest known "namespace.function" pair for an
// unresolved reference so typos surface with a hint.
func suggestReference(reg Registry, namespace, function string) string {
	if _, ok := reg[namespace]; ok {
		if fn := closest(function, reg.Functions(namespace)); fn != "" {
			return namespace + "." + fn
		}
		return ""
	}
	if ns := closest(namespace, reg.Namespaces()); ns != "" {
		if _, ok := reg.Resolve(ns, function); ok {
			return ns + "." + function
		}
		if fn := closest(function, reg.Functions(ns)); fn != "" {
			return ns + "." + fn
		}
	}
	return ""
}

func closest(input string, candidates []string) string {
	minDist := -1
	match := ""
	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(input, c)
		if minDist == -1 || dist < minDist {
			minDist = dist
			match = c
		}
	}
	if minDist > maxSuggestionDistance {
		return ""
	}
	return match
}
