package playground

import (
	"context"
	"errors"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/qlmock/qlmock/pkg/executor"
	"github.com/qlmock/qlmock/pkg/format"
	"github.com/qlmock/qlmock/pkg/mock"
)

// ErrNoSchema is returned by PrepareExecution when no valid schema is
// currently held.
var ErrNoSchema = errors.New("no valid schema to execute against")

// Session tracks one editing session: the current schema and operation
// document as two independently nullable slots, per-pane error lists, the
// cross-validation result, and the latest execution result.
//
// A Session is confined to a single goroutine (the UI event loop). The one
// exception is Execution.Run, which is safe to call from a worker
// goroutine; its result comes back through Commit on the owning goroutine.
type Session struct {
	registry mock.Registry

	schemaText     string
	operationsText string

	schema     *ast.Schema
	operations *ast.QueryDocument

	schemaStatus     Status
	operationsStatus Status
	schemaErrors     gqlerror.List
	operationsErrors gqlerror.List

	crossErrors   gqlerror.List
	crossRan      bool
	validatorFail *InternalValidationError

	result *executor.Result

	// Monotonic execution token. The last prepared execution, if still the
	// most recent when its result lands, wins.
	sequence uint64
}

// NewSession creates a session with both panes empty.
func NewSession(registry mock.Registry) *Session {
	return &Session{
		registry:         registry,
		schemaStatus:     StatusNotApplicable,
		operationsStatus: StatusNotApplicable,
	}
}

// SetSchemaText replaces the schema pane's text and reclassifies it.
// The operations pane is untouched; its artifact and errors survive even
// when the schema breaks. Cross-validation is recomputed afterwards.
func (s *Session) SetSchemaText(text string) {
	s.schemaText = text
	result := ClassifySchema(text)
	s.schemaStatus = result.Status
	s.schema = result.Schema
	s.schemaErrors = result.Errors
	s.revalidate()
}

// SetOperationsText replaces the operations pane's text and reclassifies
// it, symmetrically to SetSchemaText.
func (s *Session) SetOperationsText(text string) {
	s.operationsText = text
	result := ClassifyOperations(text)
	s.operationsStatus = result.Status
	s.operations = result.Document
	s.operationsErrors = result.Errors
	s.revalidate()
}

// revalidate recomputes cross-validation. It runs only when both a schema
// and an operation document are currently held; otherwise the previous
// result is discarded entirely: absence, not emptiness.
func (s *Session) revalidate() {
	s.crossErrors = nil
	s.crossRan = false
	s.validatorFail = nil
	if s.schema == nil || s.operations == nil {
		return
	}
	s.crossErrors, s.validatorFail = crossValidate(s.schema, s.operations)
	s.crossRan = s.validatorFail == nil
}

func (s *Session) SchemaText() string     { return s.schemaText }
func (s *Session) OperationsText() string { return s.operationsText }

// Schema returns the currently held schema, or nil when the schema pane is
// not an accepted schema document.
func (s *Session) Schema() *ast.Schema { return s.schema }

// SchemaStatus reports the schema pane's classification.
func (s *Session) SchemaStatus() Status { return s.schemaStatus }

// SchemaErrors returns the schema pane's current error list.
func (s *Session) SchemaErrors() gqlerror.List { return s.schemaErrors }

// OperationsStatus reports the operations pane's classification.
func (s *Session) OperationsStatus() Status { return s.operationsStatus }

// OperationsErrors returns the operations pane's current error list.
func (s *Session) OperationsErrors() gqlerror.List { return s.operationsErrors }

// CrossValidation returns the current cross-validation errors. ok is false
// when cross-validation is not applicable (one of the panes holds no
// artifact), which is a different state from "ran and found nothing".
func (s *Session) CrossValidation() (errs gqlerror.List, ok bool) {
	return s.crossErrors, s.crossRan
}

// ValidatorFailure returns the internal validator failure from the last
// cross-validation run, if any.
func (s *Session) ValidatorFailure() *InternalValidationError {
	return s.validatorFail
}

// Prettify reformats both panes into canonical form. Each pane is handled
// independently and a failed reformat leaves that pane's text unchanged;
// formatter errors never escape to the caller.
func (s *Session) Prettify() {
	if out, err := format.Schema(s.schemaText); err == nil {
		s.SetSchemaText(out)
	}
	if out, err := format.Operations(s.operationsText); err == nil {
		s.SetOperationsText(out)
	}
}

// Execution is one prepared execute action: the schema and resolver map
// captured at preparation time plus the request token used to discard
// stale results. Run may be called from any goroutine and does not touch
// the Session.
type Execution struct {
	sequence  uint64
	schema    *ast.Schema
	resolvers mock.ResolverMap
	source    string
}

// PrepareExecution synthesizes mock resolvers from the current schema and
// hands back a runnable execution. The resolver map is derived fresh every
// time: the schema object's identity is the invalidation key, so nothing
// is cached across edits. Fails with ErrNoSchema when no schema is held
// and with *mock.ResolverError when an annotation does not resolve.
func (s *Session) PrepareExecution() (*Execution, error) {
	if s.schema == nil {
		return nil, ErrNoSchema
	}
	resolvers, err := mock.Synthesize(s.schema, s.registry)
	if err != nil {
		return nil, err
	}
	s.sequence++
	return &Execution{
		sequence:  s.sequence,
		schema:    s.schema,
		resolvers: resolvers,
		source:    s.operationsText,
	}, nil
}

// Run executes the prepared operation text against the mocked schema.
func (e *Execution) Run(ctx context.Context) *executor.Result {
	return executor.Execute(ctx, e.schema, e.resolvers, e.source, nil)
}

// Commit stores an execution's result, replacing any previous one. If a
// newer execution has been prepared since, the stale result is dropped
// instead and Commit reports false.
func (s *Session) Commit(e *Execution, result *executor.Result) bool {
	if e.sequence != s.sequence {
		return false
	}
	s.result = result
	return true
}

// Result returns the most recently committed execution result, or nil.
func (s *Session) Result() *executor.Result { return s.result }
