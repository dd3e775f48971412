package playground

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/formvalidation/pkg/fieldpath"
	"github.com/dmitrymomot/formvalidation/pkg/validation"
)

const (
	// SubsetTag names the struct tag that assigns a field's rules to a rule subset.
	SubsetTag = "subset"
	// SeverityTag names the struct tag that lowers a field's failures to "warning" or "info".
	SeverityTag = "severity"

	validateTag = "validate"
)

// errStringFormat is the default failure message.
//
// Example: "'Line1': value '' does not meet the requirements for the 'required' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// Validator validates models of type T through their `validate` struct tags.
type Validator[T any] struct {
	validate   *validator.Validate
	translator ut.Translator
	message    MessageFunc
	modelType  reflect.Type
	ruleMaps   map[reflect.Type]map[string]string
}

var (
	_ validation.Validator = (*Validator[struct{}])(nil)
	_ validation.Describer = (*Validator[struct{}])(nil)
)

// New builds a tag-based engine for T.
func New[T any](opts ...Option) *Validator[T] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.validate == nil {
		o.validate = validator.New(validator.WithRequiredStructEnabled())
	}

	v := &Validator[T]{
		validate:   o.validate,
		translator: o.translator,
		message:    o.message,
		modelType:  reflect.TypeFor[T](),
		ruleMaps:   make(map[reflect.Type]map[string]string),
	}
	for _, rm := range o.ruleMaps {
		v.validate.RegisterStructValidationMapRules(rm.rules, rm.model)
		t := structType(rm.model)
		if v.ruleMaps[t] == nil {
			v.ruleMaps[t] = make(map[string]string, len(rm.rules))
		}
		for field, tag := range rm.rules {
			v.ruleMaps[t][field] = tag
		}
	}
	return v
}

// Engine exposes the underlying validator instance.
func (v *Validator[T]) Engine() *validator.Validate {
	return v.validate
}

// Validate runs every tag rule and keeps the failures inv's selector accepts.
func (v *Validator[T]) Validate(ctx context.Context, inv *validation.Invocation) (validation.Result, error) {
	if inv == nil {
		return validation.Result{}, ErrNilModel
	}
	model, err := modelOf[T](inv.Model)
	if err != nil {
		return validation.Result{}, err
	}

	err = v.validate.StructCtx(ctx, model)
	if err == nil {
		return validation.Result{}, nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return validation.Result{}, fmt.Errorf("playground: %w", err)
	}

	var res validation.Result
	for _, fe := range fieldErrs {
		raw := stripRoot(fe.StructNamespace())
		info := validation.RuleInfo{Path: raw, Name: fe.Tag()}
		var tags fieldTags
		// map keys have no path form and are reported verbatim
		if path, perr := fieldpath.Parse(raw); perr == nil {
			tags = v.fieldTags(path)
			info.Path = path.Pattern()
			info.Subset = tags.subset
		}
		if !inv.CanExecute(info, raw) {
			continue
		}
		res.Failures = append(res.Failures, validation.Failure{
			Path:     raw,
			Message:  v.render(fe),
			Severity: tags.severity,
			Rule:     fe.Tag(),
			Value:    fe.Value(),
		})
	}
	return res, nil
}

func (v *Validator[T]) render(fe validator.FieldError) string {
	switch {
	case v.message != nil:
		return v.message(fe)
	case v.translator != nil:
		return fe.Translate(v.translator)
	default:
		return fmt.Sprintf(errStringFormat, fe.Field(), fe.Value(), fe.Tag())
	}
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

// stripRoot turns "Person.Address.Line1" into "Address.Line1".
func stripRoot(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ""
}
