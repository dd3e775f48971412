package form

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/dmitrymomot/formvalidation/pkg/fieldpath"
)

// ValidationRequestedHandler runs when the whole form is validated.
type ValidationRequestedHandler func(ctx context.Context) error

// FieldChangedHandler runs after a field value was edited.
type FieldChangedHandler func(ctx context.Context, field fieldpath.FieldIdentifier) error

// StateChangedHandler runs when the set of validation messages changed.
type StateChangedHandler func()

type subscription[H any] struct {
	id      uint64
	handler H
}

// State is the form-state object a rendered form edits: a model, the
// validation events raised against it, the message stores that hold
// validation output, and a keyed property bag.
//
// Handlers are invoked synchronously in subscription order, outside of any
// internal lock, so a handler may subscribe, unsubscribe or notify.
type State struct {
	model any
	props *Properties

	mu                  sync.Mutex
	nextID              uint64
	validationRequested []subscription[ValidationRequestedHandler]
	fieldChanged        []subscription[FieldChangedHandler]
	stateChanged        []subscription[StateChangedHandler]
	stores              []*MessageStore
	modified            map[fieldpath.FieldIdentifier]struct{}
}

// NewState creates the state for model, which must be a non-nil pointer to a
// struct so field identifiers can refer to it.
func NewState(model any) (*State, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	rv := reflect.ValueOf(model)
	if rv.Kind() != reflect.Pointer {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidModel, model)
	}
	if rv.IsNil() {
		return nil, ErrNilModel
	}
	if rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidModel, model)
	}
	return &State{
		model:    model,
		props:    newProperties(),
		modified: make(map[fieldpath.FieldIdentifier]struct{}),
	}, nil
}

// Model returns the model passed to NewState.
func (s *State) Model() any {
	return s.model
}

// Field identifies a property owned by the model root.
func (s *State) Field(name string) fieldpath.FieldIdentifier {
	return fieldpath.Field(s.model, name)
}

// Properties returns the state's shared property bag.
func (s *State) Properties() *Properties {
	return s.props
}

// OnValidationRequested subscribes h. The returned func unsubscribes it and is
// safe to call more than once.
func (s *State) OnValidationRequested(h ValidationRequestedHandler) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.allocID()
	s.validationRequested = append(s.validationRequested, subscription[ValidationRequestedHandler]{id, h})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.validationRequested = remove(s.validationRequested, id)
	}
}

// OnFieldChanged subscribes h to field edits. The returned func unsubscribes it
// and is safe to call more than once.
func (s *State) OnFieldChanged(h FieldChangedHandler) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.allocID()
	s.fieldChanged = append(s.fieldChanged, subscription[FieldChangedHandler]{id, h})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.fieldChanged = remove(s.fieldChanged, id)
	}
}

// OnValidationStateChanged subscribes h to message updates. The returned func
// unsubscribes it and is safe to call more than once.
func (s *State) OnValidationStateChanged(h StateChangedHandler) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.allocID()
	s.stateChanged = append(s.stateChanged, subscription[StateChangedHandler]{id, h})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.stateChanged = remove(s.stateChanged, id)
	}
}

// Validate raises the validation-requested event and reports whether the form
// holds no validation messages afterwards. Handler errors are joined and every
// handler runs even if an earlier one fails. The form is never reported valid
// when a handler failed.
func (s *State) Validate(ctx context.Context) (bool, error) {
	s.mu.Lock()
	handlers := slices.Clone(s.validationRequested)
	s.mu.Unlock()

	var errs []error
	for _, sub := range handlers {
		if err := sub.handler(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return false, err
	}
	return len(s.Messages()) == 0, nil
}

// NotifyFieldChanged marks field as modified and raises the field-changed event.
func (s *State) NotifyFieldChanged(ctx context.Context, field fieldpath.FieldIdentifier) error {
	s.mu.Lock()
	s.modified[field] = struct{}{}
	handlers := slices.Clone(s.fieldChanged)
	s.mu.Unlock()

	var errs []error
	for _, sub := range handlers {
		if err := sub.handler(ctx, field); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NotifyValidationStateChanged tells subscribers the messages changed.
func (s *State) NotifyValidationStateChanged() {
	s.mu.Lock()
	handlers := slices.Clone(s.stateChanged)
	s.mu.Unlock()

	for _, sub := range handlers {
		sub.handler()
	}
}

// IsModified reports whether any field was changed since the last MarkAsUnmodified.
func (s *State) IsModified() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.modified) > 0
}

// IsFieldModified reports whether field changed since the last MarkAsUnmodified.
func (s *State) IsFieldModified(field fieldpath.FieldIdentifier) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.modified[field]
	return ok
}

// MarkAsUnmodified forgets every recorded field change.
func (s *State) MarkAsUnmodified() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.modified)
}

// Messages returns every message of every registered store.
func (s *State) Messages() []string {
	var out []string
	for _, store := range s.registeredStores() {
		out = append(out, store.Messages()...)
	}
	return out
}

// FieldMessages returns field's messages across every registered store.
func (s *State) FieldMessages(field fieldpath.FieldIdentifier) []string {
	var out []string
	for _, store := range s.registeredStores() {
		out = append(out, store.FieldMessages(field)...)
	}
	return out
}

// IsValid reports whether field has no messages in any store.
func (s *State) IsValid(field fieldpath.FieldIdentifier) bool {
	return len(s.FieldMessages(field)) == 0
}

func (s *State) registeredStores() []*MessageStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.stores)
}

func (s *State) register(store *MessageStore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stores = append(s.stores, store)
}

func (s *State) allocID() uint64 {
	s.nextID++
	return s.nextID
}

func remove[H any](subs []subscription[H], id uint64) []subscription[H] {
	return slices.DeleteFunc(subs, func(sub subscription[H]) bool { return sub.id == id })
}
