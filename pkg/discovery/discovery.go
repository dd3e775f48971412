package discovery

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"

	"github.com/dmitrymomot/formvalidation/pkg/logger"
	"github.com/dmitrymomot/formvalidation/pkg/validation"
)

// ErrScanPanic reports a source whose Scan panicked.
var ErrScanPanic = errors.New("discovery: source scan panicked")

// Registration binds a model type to the constructor of its validator.
type Registration struct {
	ModelType reflect.Type
	New       func() validation.Validator
}

// For registers fn as the validator constructor for model type T.
func For[T any](fn func() validation.Validator) Registration {
	return Registration{ModelType: reflect.TypeFor[T](), New: fn}
}

// Source yields registrations when scanned. Name identifies the source; a
// catalog scans each name at most once.
type Source interface {
	Name() string
	Scan() ([]Registration, error)
}

type staticSource struct {
	name string
	regs []Registration
}

func (s staticSource) Name() string                  { return s.name }
func (s staticSource) Scan() ([]Registration, error) { return slices.Clone(s.regs), nil }

// NewSource returns a source yielding regs.
func NewSource(name string, regs ...Registration) Source {
	return staticSource{name: name, regs: regs}
}

type funcSource struct {
	name string
	fn   func() ([]Registration, error)
}

func (s funcSource) Name() string                  { return s.name }
func (s funcSource) Scan() ([]Registration, error) { return s.fn() }

// SourceFunc returns a source whose registrations are produced by fn on scan.
func SourceFunc(name string, fn func() ([]Registration, error)) Source {
	return funcSource{name: name, fn: fn}
}

// Catalog finds validators by model type across registered sources.
//
// Sources are scanned lazily on the first lookup that misses. A scanned source
// is never scanned again, whether it matched, yielded nothing or failed; sources
// registered later are scanned by the next missing lookup. The first
// registration seen for a model type wins.
type Catalog struct {
	mu      sync.Mutex
	sources []Source
	names   map[string]struct{}
	scanned []string
	found   map[reflect.Type]Registration
	logger  *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the catalog logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCatalog returns an empty catalog that logs through slog.Default unless configured.
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		names:  make(map[string]struct{}),
		found:  make(map[reflect.Type]Registration),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register adds src. A source whose name is already registered is ignored.
func (c *Catalog) Register(src Source) {
	if src == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.names[src.Name()]; ok {
		return
	}
	c.names[src.Name()] = struct{}{}
	c.sources = append(c.sources, src)
}

// Find returns a new validator for model type t. Pointer types are looked up
// by their element type.
func (c *Catalog) Find(t reflect.Type) (validation.Validator, bool) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return nil, false
	}

	reg, ok := c.lookup(t)
	if !ok || reg.New == nil {
		return nil, false
	}
	v := reg.New()
	return v, v != nil
}

func (c *Catalog) lookup(t reflect.Type) (Registration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if reg, ok := c.found[t]; ok {
		return reg, true
	}
	c.scanPending()
	reg, ok := c.found[t]
	return reg, ok
}

// scanPending scans every source not scanned yet. Callers hold c.mu.
func (c *Catalog) scanPending() {
	for _, src := range c.sources[len(c.scanned):] {
		c.scanned = append(c.scanned, src.Name())
		regs, err := scan(src)
		if err != nil {
			c.logger.Warn("discovery source scan failed",
				logger.Component("discovery"),
				logger.Source(src.Name()),
				logger.Error(err))
			continue
		}
		for _, reg := range regs {
			if reg.ModelType == nil {
				continue
			}
			if _, exists := c.found[reg.ModelType]; !exists {
				c.found[reg.ModelType] = reg
			}
		}
		c.logger.Debug("discovery source scanned",
			logger.Component("discovery"),
			logger.Source(src.Name()),
			logger.Count(len(regs)))
	}
}

// scan runs src.Scan, turning a panic into an error.
func scan(src Source) (regs []Registration, err error) {
	defer func() {
		if r := recover(); r != nil {
			regs, err = nil, fmt.Errorf("%w: %s: %v", ErrScanPanic, src.Name(), r)
		}
	}()
	return src.Scan()
}

// Scanned lists the names of scanned sources in scan order.
func (c *Catalog) Scanned() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.scanned)
}

var defaultCatalog = NewCatalog()

// Default returns the process-wide catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Register adds src to the process-wide catalog, typically from an init func
// next to the validators it registers.
func Register(src Source) {
	defaultCatalog.Register(src)
}
