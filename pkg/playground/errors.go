package playground

import (
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

// InternalValidationError reports that the validation algorithm itself
// failed, as opposed to the document being invalid. It is a bug signal and
// is surfaced distinctly from ordinary validation errors.
type InternalValidationError struct {
	Cause any
}

func (e *InternalValidationError) Error() string {
	return fmt.Sprintf("validator failed unexpectedly: %v", e.Cause)
}

// errorList normalizes the error shapes gqlparser returns (a single
// *gqlerror.Error or a gqlerror.List) into a list.
func errorList(err error) gqlerror.List {
	if err == nil {
		return nil
	}
	var list gqlerror.List
	if errors.As(err, &list) {
		return list
	}
	var single *gqlerror.Error
	if errors.As(err, &single) {
		return gqlerror.List{single}
	}
	return gqlerror.List{gqlerror.Errorf("%s", err.Error())}
}
