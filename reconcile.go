package formvalidation

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrymomot/formvalidation/pkg/fieldpath"
	"github.com/dmitrymomot/formvalidation/pkg/form"
	"github.com/dmitrymomot/formvalidation/pkg/validation"
)

type resolvedFailure struct {
	field   fieldpath.FieldIdentifier
	failure validation.Failure
}

// Reconcile applies failures to store and raises one validation-state-changed
// notification on state.
//
// A full scope replaces every message in store. A field scope replaces only
// that field's messages with the failures reported for exactly its path,
// dropping repeated message strings.
//
// Failure paths are resolved before store is touched. A path that cannot be
// resolved against the model is kept under the model with its raw text as the
// field name, so no reported failure is lost.
func Reconcile(state *form.State, store *form.MessageStore, scope Scope, failures []validation.Failure) error {
	resolved, err := resolveFailures(state.Model(), scope, failures)
	if err != nil {
		return err
	}
	store.Batch(func(b *form.Batch) {
		applyFailures(b, scope, resolved)
	})
	state.NotifyValidationStateChanged()
	return nil
}

func resolveFailures(model any, scope Scope, failures []validation.Failure) ([]resolvedFailure, error) {
	out := make([]resolvedFailure, 0, len(failures))
	if scope.single {
		want := scope.path.String()
		for _, f := range failures {
			if f.Path == want {
				out = append(out, resolvedFailure{field: scope.field, failure: f})
			}
		}
		return out, nil
	}

	for _, f := range failures {
		id, err := resolveFailure(model, f.Path)
		if err != nil {
			return nil, fmt.Errorf("formvalidation: failure path %q: %w", f.Path, err)
		}
		out = append(out, resolvedFailure{field: id, failure: f})
	}
	return out, nil
}

// resolveFailure maps a failure path to its field. A path that does not parse
// or names no property of the model, such as a map key reported by a dive
// rule, is kept under the model itself with the raw path as its name.
func resolveFailure(model any, raw string) (fieldpath.FieldIdentifier, error) {
	p, err := fieldpath.Parse(raw)
	if err == nil {
		var id fieldpath.FieldIdentifier
		if id, err = fieldpath.ResolveFieldIdentifier(model, p); err == nil {
			return id, nil
		}
	}
	if errors.Is(err, fieldpath.ErrInvalidModel) {
		return fieldpath.FieldIdentifier{}, err
	}
	return fieldpath.Field(model, raw), nil
}

func applyFailures(b *form.Batch, scope Scope, resolved []resolvedFailure) {
	if !scope.single {
		b.Clear()
		for _, r := range resolved {
			b.Add(r.field, r.failure.Message)
		}
		return
	}

	b.ClearField(scope.field)
	var seen []string
	for _, r := range resolved {
		if slices.Contains(seen, r.failure.Message) {
			continue
		}
		seen = append(seen, r.failure.Message)
		b.Add(scope.field, r.failure.Message)
	}
}
