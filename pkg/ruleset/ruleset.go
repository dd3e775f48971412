package ruleset

import (
	"context"
	"fmt"
	"reflect"

	"github.com/dmitrymomot/formvalidation/pkg/fieldpath"
	"github.com/dmitrymomot/formvalidation/pkg/validation"
	"github.com/dmitrymomot/formvalidation/pkg/validator"
)

// RuleSet is a collection of property rules bound to model type T.
// Rules are registered up front; a RuleSet is safe for concurrent validation
// once configured.
type RuleSet[T any] struct {
	rules  []rule[T]
	subset string
}

var (
	_ validation.Validator = (*RuleSet[struct{}])(nil)
	_ validation.Describer = (*RuleSet[struct{}])(nil)
)

type rule[T any] interface {
	run(ctx context.Context, ec *evalContext, model *T, base fieldpath.Path, subset string) error
	// rulesFor returns the rules addressing rest, the part of a path below base.
	rulesFor(rest, base fieldpath.Path, subset string) []validation.RuleInfo
}

type evalContext struct {
	inv    *validation.Invocation
	errs   validator.ValidationErrors
	values []any
}

func (ec *evalContext) add(fe validator.ValidationError, value any) {
	ec.errs.Add(fe)
	ec.values = append(ec.values, value)
}

func (ec *evalContext) failures() []validation.Failure {
	if ec.errs.IsEmpty() {
		return nil
	}
	out := make([]validation.Failure, len(ec.errs))
	for i, fe := range ec.errs {
		out[i] = validation.Failure{
			Path:     fe.Field,
			Message:  fe.Message,
			Severity: fe.Severity,
			Rule:     fe.TranslationKey,
			Value:    ec.values[i],
		}
	}
	return out
}

// New returns an empty rule set for T.
func New[T any]() *RuleSet[T] {
	return &RuleSet[T]{}
}

// Subset registers the rules added inside fn under the named rule subset.
// Those rules run only when an invocation includes the subset.
func (rs *RuleSet[T]) Subset(name string, fn func(rs *RuleSet[T])) *RuleSet[T] {
	prev := rs.subset
	rs.subset = name
	defer func() { rs.subset = prev }()
	fn(rs)
	return rs
}

func (rs *RuleSet[T]) add(r rule[T]) {
	rs.rules = append(rs.rules, r)
}

// Validate runs the selected rules against inv.Model, which must be a *T or a T.
// Failures are reported in rule registration order.
func (rs *RuleSet[T]) Validate(ctx context.Context, inv *validation.Invocation) (validation.Result, error) {
	ec, err := rs.evaluate(ctx, inv)
	if err != nil {
		return validation.Result{}, err
	}
	return validation.Result{Failures: ec.failures()}, nil
}

// Errors validates model outside of a form and returns the failures as
// validator.ValidationErrors keyed by property path, or nil when the model is
// valid. Engine errors are returned unchanged.
func (rs *RuleSet[T]) Errors(ctx context.Context, model any, opts ...validation.StrategyOption) error {
	ec, err := rs.evaluate(ctx, validation.NewInvocation(model, opts...))
	if err != nil {
		return err
	}
	if ec.errs.IsEmpty() {
		return nil
	}
	return ec.errs
}

func (rs *RuleSet[T]) evaluate(ctx context.Context, inv *validation.Invocation) (*evalContext, error) {
	if inv == nil {
		return nil, ErrNilModel
	}
	model, err := modelOf[T](inv.Model)
	if err != nil {
		return nil, err
	}
	ec := &evalContext{inv: inv}
	if err := rs.run(ctx, ec, model, nil, ""); err != nil {
		return nil, err
	}
	return ec, nil
}

func (rs *RuleSet[T]) run(ctx context.Context, ec *evalContext, model *T, base fieldpath.Path, subset string) error {
	for _, r := range rs.rules {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.run(ctx, ec, model, base, subset); err != nil {
			return err
		}
	}
	return nil
}

func modelOf[T any](m any) (*T, error) {
	switch v := m.(type) {
	case *T:
		if v == nil {
			return nil, ErrNilModel
		}
		return v, nil
	case T:
		return &v, nil
	case nil:
		return nil, ErrNilModel
	default:
		return nil, fmt.Errorf("%w: got %T, want %s", ErrUnexpectedModel, m, reflect.TypeFor[*T]())
	}
}

// Descriptor lists the rules per property path. The path is walked through
// the registered rules, so concrete indices ("Orders[3].Total") and recursive
// rule sets are matched.
func (rs *RuleSet[T]) Descriptor() validation.Descriptor {
	return descriptor[T]{rs: rs}
}

func (rs *RuleSet[T]) rulesFor(rest, base fieldpath.Path, subset string) []validation.RuleInfo {
	var out []validation.RuleInfo
	for _, r := range rs.rules {
		out = append(out, r.rulesFor(rest, base, subset)...)
	}
	return out
}

type descriptor[T any] struct {
	rs *RuleSet[T]
}

func (d descriptor[T]) RulesForField(path string) []validation.RuleInfo {
	p, err := fieldpath.Parse(path)
	if err != nil || len(p) == 0 {
		return nil
	}
	return d.rs.rulesFor(p, nil, "")
}

func effectiveSubset(own, inherited string) string {
	if own != "" {
		return own
	}
	return inherited
}

const mustKey = "validation.must"

// FieldRule validates one property of T with an ordered list of checks.
type FieldRule[T, V any] struct {
	name   string
	get    func(*T) V
	checks []evaluator[V]
	subset string
	when   func(*T) bool
	stop   bool
}

// Field registers a rule for property name. get reads the value from the model.
func Field[T, V any](rs *RuleSet[T], name string, get func(*T) V, checks ...Check[V]) *FieldRule[T, V] {
	fr := &FieldRule[T, V]{name: name, get: get, subset: rs.subset}
	for _, c := range checks {
		fr.checks = append(fr.checks, fromCheck(c))
	}
	rs.add(fr)
	return fr
}

// Check appends more checks.
func (fr *FieldRule[T, V]) Check(checks ...Check[V]) *FieldRule[T, V] {
	for _, c := range checks {
		fr.checks = append(fr.checks, fromCheck(c))
	}
	return fr
}

// Must appends a predicate check. The predicate may block (remote lookups).
// A returned validator.ValidationErrors, such as the result of
// validator.Apply, is reported as failures of this field; any other error
// aborts validation and is returned by Validate.
func (fr *FieldRule[T, V]) Must(message string, pred func(ctx context.Context, value V) (bool, error)) *FieldRule[T, V] {
	fr.checks = append(fr.checks, func(ctx context.Context, field string, value V) (validator.ValidationErrors, error) {
		ok, err := pred(ctx, value)
		if validator.IsValidationError(err) {
			reported := validator.ExtractValidationErrors(err)
			out := make(validator.ValidationErrors, 0, len(reported))
			for _, fe := range reported {
				fe.Field = field
				if fe.TranslationKey == "" {
					fe.TranslationKey = mustKey
				}
				out.Add(fe)
			}
			return out, nil
		}
		if err != nil || ok {
			return nil, err
		}
		return validator.ValidationErrors{{
			Field:          field,
			Message:        message,
			TranslationKey: mustKey,
		}}, nil
	})
	return fr
}

// When runs the rule only for models where pred holds.
func (fr *FieldRule[T, V]) When(pred func(*T) bool) *FieldRule[T, V] {
	fr.when = pred
	return fr
}

// StopOnFirstFailure skips the remaining checks after the first failing one.
func (fr *FieldRule[T, V]) StopOnFirstFailure() *FieldRule[T, V] {
	fr.stop = true
	return fr
}

func (fr *FieldRule[T, V]) info(base fieldpath.Path, subset string) (validation.RuleInfo, fieldpath.Path) {
	path := base.Child(fr.name)
	return validation.RuleInfo{
		Path:   path.Pattern(),
		Name:   fr.name,
		Subset: effectiveSubset(fr.subset, subset),
	}, path
}

func (fr *FieldRule[T, V]) run(ctx context.Context, ec *evalContext, model *T, base fieldpath.Path, subset string) error {
	info, path := fr.info(base, subset)
	field := path.String()
	if !ec.inv.CanExecute(info, field) {
		return nil
	}
	if fr.when != nil && !fr.when(model) {
		return nil
	}

	value := fr.get(model)
	for _, eval := range fr.checks {
		errs, err := eval(ctx, field, value)
		if err != nil {
			return fmt.Errorf("ruleset: %s: %w", field, err)
		}
		if errs.IsEmpty() {
			continue
		}
		for _, fe := range errs {
			ec.add(fe, value)
		}
		if fr.stop {
			break
		}
	}
	return nil
}

func (fr *FieldRule[T, V]) rulesFor(rest, base fieldpath.Path, subset string) []validation.RuleInfo {
	if len(rest) != 1 || rest[0].Indexed || rest[0].Name != fr.name {
		return nil
	}
	info, _ := fr.info(base, subset)
	return []validation.RuleInfo{info}
}
