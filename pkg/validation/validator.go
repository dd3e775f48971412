package validation

import "context"

// Validator is a rule engine bound to one model type.
// Validate may block (slow or remote rules); errors are engine failures, not
// rule violations, which are reported in Result.
type Validator interface {
	Validate(ctx context.Context, inv *Invocation) (Result, error)
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(ctx context.Context, inv *Invocation) (Result, error)

func (f ValidatorFunc) Validate(ctx context.Context, inv *Invocation) (Result, error) {
	return f(ctx, inv)
}

// Descriptor lists the rules a validator has for a property path.
type Descriptor interface {
	RulesForField(path string) []RuleInfo
}

// Describer is implemented by validators that can describe their rules.
type Describer interface {
	Descriptor() Descriptor
}

// DescriptorOf returns v's descriptor when v can describe itself.
func DescriptorOf(v Validator) (Descriptor, bool) {
	d, ok := v.(Describer)
	if !ok {
		return nil, false
	}
	desc := d.Descriptor()
	return desc, desc != nil
}
