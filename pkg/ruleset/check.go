package ruleset

import (
	"context"

	"github.com/dmitrymomot/formvalidation/pkg/validation"
	"github.com/dmitrymomot/formvalidation/pkg/validator"
)

// Check builds a validator.Rule for one property value. Most rules in
// package validator already have this shape:
//
//	ruleset.Field(rs, "Name", getName, validator.Required)
type Check[V any] func(field string, value V) validator.Rule

// Bind adapts a rule taking one extra argument, such as validator.MinLenString.
func Bind[V, P any](fn func(field string, value V, p P) validator.Rule, p P) Check[V] {
	return func(field string, value V) validator.Rule {
		return fn(field, value, p)
	}
}

// Bind2 adapts a rule taking two extra arguments, such as validator.RangeNum.
func Bind2[V, P1, P2 any](fn func(field string, value V, p1 P1, p2 P2) validator.Rule, p1 P1, p2 P2) Check[V] {
	return func(field string, value V) validator.Rule {
		return fn(field, value, p1, p2)
	}
}

// Message overrides the failure message of c.
func Message[V any](c Check[V], message string) Check[V] {
	return func(field string, value V) validator.Rule {
		return c(field, value).WithMessage(message)
	}
}

// Severity overrides the failure severity of c.
func Severity[V any](c Check[V], s validation.Severity) Check[V] {
	return func(field string, value V) validator.Rule {
		return c(field, value).WithSeverity(s)
	}
}

// evaluator is the uniform form of every check attached to a field. An empty
// result means the check passed; an error aborts validation.
type evaluator[V any] func(ctx context.Context, field string, value V) (validator.ValidationErrors, error)

func fromCheck[V any](c Check[V]) evaluator[V] {
	return func(_ context.Context, field string, value V) (validator.ValidationErrors, error) {
		return validator.ExtractValidationErrors(validator.Apply(c(field, value))), nil
	}
}
