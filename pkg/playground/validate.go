package playground

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/validator"
)

// crossValidate checks an operation document's structural compatibility
// with a schema: field existence, argument types and presence, fragment
// type compatibility, variable usage, directive legality. Every violation
// is returned; there is no short-circuit on the first error, and the list
// preserves the validator's own detection order.
//
// A panic inside the validator is contained and reported as an
// InternalValidationError rather than being conflated with the returned
// list or allowed to kill the event loop.
func crossValidate(schema *ast.Schema, document *ast.QueryDocument) (errs gqlerror.List, internal *InternalValidationError) {
	defer func() {
		if r := recover(); r != nil {
			errs = nil
			internal = &InternalValidationError{Cause: r}
		}
	}()
	return validator.Validate(schema, document), nil
}
