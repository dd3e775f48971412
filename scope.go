package formvalidation

import (
	"github.com/dmitrymomot/formvalidation/pkg/fieldpath"
	"github.com/dmitrymomot/formvalidation/pkg/validation"
)

// Scope selects what a validation pass covers: the whole model, or exactly
// one property path.
type Scope struct {
	single bool
	field  fieldpath.FieldIdentifier
	path   fieldpath.Path
}

// FullScope validates the whole model.
func FullScope() Scope {
	return Scope{}
}

// FieldScope validates the property at path, which field identifies.
func FieldScope(field fieldpath.FieldIdentifier, path fieldpath.Path) Scope {
	return Scope{single: true, field: field, path: path}
}

// IsFull reports whether s covers the whole model.
func (s Scope) IsFull() bool { return !s.single }

// Field returns the identifier of a field scope's property.
func (s Scope) Field() fieldpath.FieldIdentifier { return s.field }

// Path returns the root-relative path of a field scope. It is empty for a full scope.
func (s Scope) Path() fieldpath.Path { return s.path }

func (s Scope) String() string {
	if s.single {
		return "field"
	}
	return "full"
}

// BuildInvocation prepares a rule-engine invocation for model. strategy
// options apply in both scopes. A non-nil filter must accept a rule for it to
// run, and a field scope additionally restricts rules to its path.
//
// A panicking strategy option is not recovered.
func BuildInvocation(model any, scope Scope, filter validation.Selector, strategy ...validation.StrategyOption) *validation.Invocation {
	opts := make([]validation.StrategyOption, 0, len(strategy)+2)
	opts = append(opts, strategy...)
	if filter != nil {
		opts = append(opts, validation.UseSelector(filter))
	}
	if scope.single {
		opts = append(opts, validation.IncludeProperties(scope.path.String()))
	}
	return validation.NewInvocation(model, opts...)
}
