package form

import "sync"

// Properties is a concurrency-safe keyed bag attached to a State.
type Properties struct {
	mu     sync.RWMutex
	values map[string]any
}

func newProperties() *Properties {
	return &Properties{values: make(map[string]any)}
}

// Get returns the value stored under key.
func (p *Properties) Get(key string) (any, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.values[key]
	return v, ok
}

// Set stores value under key, replacing any earlier value.
func (p *Properties) Set(key string, value any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[key] = value
}

// Delete removes key.
func (p *Properties) Delete(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.values, key)
}

// Value returns the property stored under key when it has type T.
func Value[T any](p *Properties, key string) (T, bool) {
	v, ok := p.Get(key)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
