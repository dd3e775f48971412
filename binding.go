package formvalidation

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formvalidation/pkg/async"
	"github.com/dmitrymomot/formvalidation/pkg/fieldpath"
	"github.com/dmitrymomot/formvalidation/pkg/form"
	"github.com/dmitrymomot/formvalidation/pkg/logger"
	"github.com/dmitrymomot/formvalidation/pkg/validation"
)

// Lifecycle is the state of a Binding. Disposed is terminal.
type Lifecycle int32

const (
	Unattached Lifecycle = iota
	Attached
	Disposed
)

func (l Lifecycle) String() string {
	switch l {
	case Unattached:
		return "unattached"
	case Attached:
		return "attached"
	case Disposed:
		return "disposed"
	default:
		return fmt.Sprintf("lifecycle(%d)", int32(l))
	}
}

// Binding connects a form.State to a rule engine. It validates the model when
// the form requests it, validates single fields as they change, and keeps the
// messages it owns in its own MessageStore.
//
// Validations triggered concurrently run concurrently. By default a result
// that finishes after a newer validation of the same scope is discarded;
// results of different scopes (full and field) apply in completion order.
type Binding struct {
	id     uuid.UUID
	state  *form.State
	store  *form.MessageStore
	opts   *options
	logger *slog.Logger

	mu          sync.Mutex
	lifecycle   Lifecycle
	unsubscribe []func()
	validator   validation.Validator
	fullSeq     uint64
	fieldSeq    map[fieldpath.FieldIdentifier]uint64
	failures    map[fieldpath.FieldIdentifier][]validation.Failure
	fields      []fieldpath.FieldIdentifier
}

// Attach binds state to its validator and subscribes to the form's events.
// The returned binding must be closed when the form goes away.
func Attach(state *form.State, opts ...Option) (*Binding, error) {
	if state == nil {
		return nil, ErrNilState
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	b := &Binding{
		id:       uuid.New(),
		state:    state,
		store:    form.NewMessageStore(state),
		opts:     o,
		fieldSeq: make(map[fieldpath.FieldIdentifier]uint64),
		failures: make(map[fieldpath.FieldIdentifier][]validation.Failure),
	}
	b.logger = o.logger.With(logger.Component("formvalidation"), logger.BindingID(b.id.String()))

	b.mu.Lock()
	b.unsubscribe = []func(){
		state.OnValidationRequested(b.handleValidationRequested),
		state.OnFieldChanged(b.handleFieldChanged),
	}
	b.lifecycle = Attached
	b.mu.Unlock()

	b.logger.Debug("binding attached", logger.ModelType(reflect.TypeOf(state.Model())))
	return b, nil
}

// ID returns the binding's unique identifier, used to correlate its log lines.
func (b *Binding) ID() string {
	return b.id.String()
}

// Lifecycle reports whether the binding is attached or disposed.
func (b *Binding) Lifecycle() Lifecycle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lifecycle
}

// Store returns the message store this binding populates.
func (b *Binding) Store() *form.MessageStore {
	return b.store
}

// Close unsubscribes from the form, clears the binding's messages and raises
// one final notification. Closing again is a no-op.
func (b *Binding) Close() error {
	b.mu.Lock()
	if b.lifecycle == Disposed {
		b.mu.Unlock()
		return nil
	}
	b.lifecycle = Disposed
	unsubscribe := b.unsubscribe
	b.unsubscribe = nil
	b.store.Clear()
	clear(b.failures)
	b.fields = nil
	b.mu.Unlock()

	for _, fn := range unsubscribe {
		fn()
	}
	b.state.NotifyValidationStateChanged()
	b.logger.Debug("binding closed")
	return nil
}

type oneShotKey struct{}

type oneShot struct {
	binding  *Binding
	strategy []validation.StrategyOption
}

// Validate runs a full form validation through the form state, so every
// subscriber takes part, and reports whether the form holds no messages.
// strategy, when given, replaces this binding's configured strategy for this
// call only.
func (b *Binding) Validate(ctx context.Context, strategy ...validation.StrategyOption) (bool, error) {
	if b.Lifecycle() == Disposed {
		return false, ErrBindingClosed
	}
	if len(strategy) > 0 {
		ctx = context.WithValue(ctx, oneShotKey{}, oneShot{binding: b, strategy: strategy})
	}
	return b.state.Validate(ctx)
}

// ValidateField validates the single field and updates its messages. A field
// that is not reachable from the model, or has no rules, is skipped.
func (b *Binding) ValidateField(ctx context.Context, field fieldpath.FieldIdentifier) error {
	if b.Lifecycle() == Disposed {
		return ErrBindingClosed
	}
	return b.handleFieldChanged(ctx, field)
}

// Pending returns the most recently started validation on the form.
func (b *Binding) Pending() (*async.Future[validation.Result], bool) {
	return PendingValidation(b.state)
}

// Failures returns the failures behind the binding's current messages, with
// their severities, in field insertion order.
func (b *Binding) Failures() []validation.Failure {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []validation.Failure
	for _, f := range b.fields {
		out = append(out, b.failures[f]...)
	}
	return out
}

// FieldFailures returns the current failures of field.
func (b *Binding) FieldFailures(field fieldpath.FieldIdentifier) []validation.Failure {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.failures[field])
}

func (b *Binding) strategyFor(ctx context.Context) []validation.StrategyOption {
	if shot, ok := ctx.Value(oneShotKey{}).(oneShot); ok && shot.binding == b {
		return shot.strategy
	}
	return b.opts.strategy
}

func (b *Binding) handleValidationRequested(ctx context.Context) error {
	v, err := b.resolveValidator()
	if err != nil || v == nil {
		return err
	}

	scope := FullScope()
	seq := b.begin(scope)
	inv := BuildInvocation(b.state.Model(), scope, b.opts.filter, b.strategyFor(ctx)...)
	res, err := b.run(ctx, v, scope, inv)
	if err != nil {
		return err
	}
	return b.apply(scope, seq, res.Failures)
}

func (b *Binding) handleFieldChanged(ctx context.Context, field fieldpath.FieldIdentifier) error {
	path, ok := fieldpath.ResolvePath(b.state.Model(), field.Owner, field.Name)
	if !ok {
		b.logger.Debug("field not reachable from model, skipping validation", logger.Field(field.Name))
		return nil
	}

	v, err := b.resolveValidator()
	if err != nil || v == nil {
		return err
	}
	if desc, ok := validation.DescriptorOf(v); ok && len(desc.RulesForField(path.String())) == 0 {
		b.logger.Debug("field has no rules, skipping validation", logger.Path(path.String()))
		return nil
	}

	scope := FieldScope(field, path)
	seq := b.begin(scope)
	inv := BuildInvocation(b.state.Model(), scope, b.opts.filter, b.strategyFor(ctx)...)
	res, err := b.run(ctx, v, scope, inv)
	if err != nil {
		return err
	}
	return b.apply(scope, seq, res.Failures)
}

// run invokes the engine asynchronously and publishes the pending handle.
// The engine call is not canceled with ctx; it always runs to completion.
func (b *Binding) run(ctx context.Context, v validation.Validator, scope Scope, inv *validation.Invocation) (validation.Result, error) {
	ctx = logger.ContextWithAttrs(ctx, logger.Scope(scope.String()), logger.Path(scope.Path().String()))
	start := time.Now()
	fut := async.Async(context.WithoutCancel(ctx), inv, v.Validate)
	b.state.Properties().Set(PendingValidationKey, fut)

	res, err := fut.Await()
	if err != nil {
		b.logger.ErrorContext(ctx, "rule engine failed", logger.Error(err))
		return validation.Result{}, fmt.Errorf("formvalidation: validate %s: %w", scope, err)
	}
	b.logger.DebugContext(ctx, "validation finished",
		logger.Count(len(res.Failures)),
		logger.Duration(time.Since(start)))
	return res, nil
}

// begin allocates the sequence number of a new validation of scope.
func (b *Binding) begin(scope Scope) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if scope.IsFull() {
		b.fullSeq++
		return b.fullSeq
	}
	b.fieldSeq[scope.Field()]++
	return b.fieldSeq[scope.Field()]
}

func (b *Binding) isStale(scope Scope, seq uint64) bool {
	if b.opts.relaxedOrdering {
		return false
	}
	if scope.IsFull() {
		return seq != b.fullSeq
	}
	return seq != b.fieldSeq[scope.Field()]
}

// apply reconciles a finished validation. Results arriving after Close, and
// stale results of a scope, are dropped.
func (b *Binding) apply(scope Scope, seq uint64, failures []validation.Failure) error {
	b.mu.Lock()
	if b.lifecycle == Disposed {
		b.mu.Unlock()
		b.logger.Debug("binding closed, dropping validation result", logger.Scope(scope.String()))
		return nil
	}
	if b.isStale(scope, seq) {
		b.mu.Unlock()
		b.logger.Warn("discarding stale validation result",
			logger.Scope(scope.String()),
			logger.Path(scope.Path().String()))
		return nil
	}

	resolved, err := resolveFailures(b.state.Model(), scope, failures)
	if err != nil {
		b.mu.Unlock()
		b.logger.Warn("cannot map validation failures onto form fields",
			logger.Scope(scope.String()),
			logger.Error(err))
		return err
	}
	b.store.Batch(func(batch *form.Batch) {
		applyFailures(batch, scope, resolved)
	})
	b.recordFailures(scope, resolved)
	b.mu.Unlock()

	b.state.NotifyValidationStateChanged()
	return nil
}

// recordFailures mirrors the store update into the failure index. Callers hold b.mu.
func (b *Binding) recordFailures(scope Scope, resolved []resolvedFailure) {
	if scope.IsFull() {
		clear(b.failures)
		b.fields = nil
	} else {
		delete(b.failures, scope.Field())
		b.fields = slices.DeleteFunc(b.fields, func(f fieldpath.FieldIdentifier) bool { return f == scope.Field() })
	}
	for _, r := range resolved {
		if _, ok := b.failures[r.field]; !ok {
			b.fields = append(b.fields, r.field)
		}
		b.failures[r.field] = append(b.failures[r.field], r.failure)
	}
}

// resolveValidator returns the binding's validator, looking it up on first
// use. A nil validator without error means validation is skipped.
func (b *Binding) resolveValidator() (validation.Validator, error) {
	b.mu.Lock()
	v := b.validator
	b.mu.Unlock()
	if v != nil {
		return v, nil
	}

	model := b.state.Model()
	modelType := b.opts.modelType
	if modelType == nil {
		modelType = reflect.TypeOf(model)
	}

	v, source := b.opts.lookupValidator(model, modelType)
	if v == nil {
		if b.opts.strictLookup {
			return nil, fmt.Errorf("%w: %s", ErrValidatorNotFound, modelType)
		}
		b.logger.Debug("no validator for model, skipping validation", logger.ModelType(modelType))
		return nil, nil
	}

	b.mu.Lock()
	if b.validator == nil {
		b.validator = v
		b.logger.Debug("validator resolved", logger.ModelType(modelType), logger.Source(string(source)))
	}
	v = b.validator
	b.mu.Unlock()
	return v, nil
}
