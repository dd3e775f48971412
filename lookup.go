package formvalidation

import (
	"reflect"
	"sync"

	"github.com/dmitrymomot/formvalidation/pkg/validation"
)

// Services resolves validators registered by the application, keyed by model type.
type Services interface {
	Validator(modelType reflect.Type) (validation.Validator, bool)
}

// Registry is an in-memory Services implementation.
type Registry struct {
	mu         sync.RWMutex
	validators map[reflect.Type]validation.Validator
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{validators: make(map[reflect.Type]validation.Validator)}
}

// Register binds v to model type T, replacing any earlier registration.
func Register[T any](r *Registry, v validation.Validator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validators[reflect.TypeFor[T]()] = v
}

// Validator looks modelType up; pointer types are resolved to their element type.
func (r *Registry) Validator(modelType reflect.Type) (validation.Validator, bool) {
	for modelType != nil && modelType.Kind() == reflect.Pointer {
		modelType = modelType.Elem()
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.validators[modelType]
	return v, ok && v != nil
}

// FactoryContext is passed to a ValidatorFactory.
type FactoryContext struct {
	Model     any
	ModelType reflect.Type
	Services  Services
}

// ValidatorFactory builds the validator for a binding. Returning nil falls
// through to the remaining lookup steps.
type ValidatorFactory func(fc FactoryContext) validation.Validator

// lookupSource names the step that produced a validator, for logging.
type lookupSource string

const (
	sourceExplicit  lookupSource = "explicit"
	sourceFactory   lookupSource = "factory"
	sourceServices  lookupSource = "services"
	sourceDiscovery lookupSource = "discovery"
)

// lookupValidator resolves a validator in order: explicit instance, factory,
// registered services, discovery catalog.
func (o *options) lookupValidator(model any, modelType reflect.Type) (validation.Validator, lookupSource) {
	if o.validator != nil {
		return o.validator, sourceExplicit
	}
	if o.factory != nil {
		if v := o.factory(FactoryContext{Model: model, ModelType: modelType, Services: o.services}); v != nil {
			return v, sourceFactory
		}
	}
	if o.services != nil {
		if v, ok := o.services.Validator(modelType); ok {
			return v, sourceServices
		}
	}
	if !o.disableDiscovery && o.catalog != nil {
		if v, ok := o.catalog.Find(modelType); ok {
			return v, sourceDiscovery
		}
	}
	return nil, ""
}
