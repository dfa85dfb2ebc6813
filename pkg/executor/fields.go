package executor

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// collectedFieldMap groups selections by response name while preserving the
// order they first appear in the query, so the response shape follows the
// document.
type collectedFieldMap struct {
	groups []collectedField
	index  map[string]int
}

type collectedField struct {
	ResponseName string
	Fields       []*ast.Field
}

func newCollectedFieldMap() *collectedFieldMap {
	return &collectedFieldMap{index: make(map[string]int)}
}

func (cfm *collectedFieldMap) add(responseName string, field *ast.Field) {
	if idx, ok := cfm.index[responseName]; ok {
		cfm.groups[idx].Fields = append(cfm.groups[idx].Fields, field)
		return
	}
	cfm.index[responseName] = len(cfm.groups)
	cfm.groups = append(cfm.groups, collectedField{
		ResponseName: responseName,
		Fields:       []*ast.Field{field},
	})
}

func (cfm *collectedFieldMap) ordered() []collectedField {
	return cfm.groups
}

// collectFields flattens a selection set into ordered response-name groups,
// expanding fragment spreads and inline fragments whose type condition
// matches and dropping selections excluded by @skip/@include.
func (st *state) collectFields(objectType *ast.Definition, selectionSet ast.SelectionSet) *collectedFieldMap {
	grouped := newCollectedFieldMap()
	st.collectFieldsInto(objectType, selectionSet, grouped, map[string]bool{})
	return grouped
}

func (st *state) collectFieldsInto(objectType *ast.Definition, selectionSet ast.SelectionSet, grouped *collectedFieldMap, visited map[string]bool) {
	for _, selection := range selectionSet {
		switch sel := selection.(type) {
		case *ast.Field:
			if !st.shouldInclude(sel.Directives) {
				continue
			}
			responseName := sel.Alias
			if responseName == "" {
				responseName = sel.Name
			}
			grouped.add(responseName, sel)

		case *ast.InlineFragment:
			if !st.shouldInclude(sel.Directives) {
				continue
			}
			if !st.typeMatches(objectType, sel.TypeCondition) {
				continue
			}
			st.collectFieldsInto(objectType, sel.SelectionSet, grouped, visited)

		case *ast.FragmentSpread:
			if !st.shouldInclude(sel.Directives) {
				continue
			}
			if visited[sel.Name] {
				continue
			}
			visited[sel.Name] = true

			fragment := st.document.Fragments.ForName(sel.Name)
			if fragment == nil {
				continue
			}
			if !st.typeMatches(objectType, fragment.TypeCondition) {
				continue
			}
			if !st.shouldInclude(fragment.Directives) {
				continue
			}
			st.collectFieldsInto(objectType, fragment.SelectionSet, grouped, visited)
		}
	}
}

// typeMatches reports whether a fragment with the given type condition
// applies to the concrete object type being executed.
func (st *state) typeMatches(objectType *ast.Definition, condition string) bool {
	if condition == "" || condition == objectType.Name {
		return true
	}
	for _, iface := range objectType.Interfaces {
		if iface == condition {
			return true
		}
	}
	for _, possible := range st.schema.PossibleTypes[condition] {
		if possible.Name == objectType.Name {
			return true
		}
	}
	return false
}

// shouldInclude evaluates @skip and @include, resolving variable arguments
// against the operation's coerced variables.
func (st *state) shouldInclude(directives ast.DirectiveList) bool {
	if skip := directives.ForName("skip"); skip != nil {
		if cond, ok := st.directiveCondition(skip); ok && cond {
			return false
		}
	}
	if include := directives.ForName("include"); include != nil {
		if cond, ok := st.directiveCondition(include); ok && !cond {
			return false
		}
	}
	return true
}

func (st *state) directiveCondition(directive *ast.Directive) (bool, bool) {
	arg := directive.Arguments.ForName("if")
	if arg == nil || arg.Value == nil {
		return false, false
	}
	switch arg.Value.Kind {
	case ast.Variable:
		if v, ok := st.variables[arg.Value.Raw]; ok {
			b, isBool := v.(bool)
			return b, isBool
		}
		return false, false
	case ast.BooleanValue:
		return arg.Value.Raw == "true", true
	}
	return false, false
}

// mergeSelectionSets concatenates the sub-selections of one response-name
// group before descending into an object value.
func mergeSelectionSets(fields []*ast.Field) ast.SelectionSet {
	var merged ast.SelectionSet
	for _, field := range fields {
		merged = append(merged, field.SelectionSet...)
	}
	return merged
}
