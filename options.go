package formvalidation

import (
	"log/slog"
	"reflect"

	"github.com/dmitrymomot/formvalidation/pkg/discovery"
	"github.com/dmitrymomot/formvalidation/pkg/validation"
)

type options struct {
	validator        validation.Validator
	factory          ValidatorFactory
	services         Services
	catalog          *discovery.Catalog
	disableDiscovery bool
	strictLookup     bool
	relaxedOrdering  bool
	modelType        reflect.Type
	filter           validation.Selector
	strategy         []validation.StrategyOption
	logger           *slog.Logger
}

// Option configures a Binding.
type Option func(*options)

// WithValidator uses v for every validation; no lookup is performed.
func WithValidator(v validation.Validator) Option {
	return func(o *options) { o.validator = v }
}

// WithDisableDiscovery skips the discovery catalog during lookup.
func WithDisableDiscovery() Option {
	return func(o *options) { o.disableDiscovery = true }
}

// WithRuleFilter restricts which rules run. The filter is combined with the
// scope's own selection; both must accept a rule.
func WithRuleFilter(fn func(rule validation.RuleInfo, path string, inv *validation.Invocation) bool) Option {
	return func(o *options) {
		if fn != nil {
			o.filter = validation.SelectorFunc(fn)
		}
	}
}

// WithStrategy sets the strategy options applied to every validation.
func WithStrategy(opts ...validation.StrategyOption) Option {
	return func(o *options) { o.strategy = append(o.strategy, opts...) }
}

// WithServices looks validators up in s before discovery.
func WithServices(s Services) Option {
	return func(o *options) { o.services = s }
}

// WithCatalog uses c instead of the process-wide discovery catalog.
func WithCatalog(c *discovery.Catalog) Option {
	return func(o *options) {
		if c != nil {
			o.catalog = c
		}
	}
}

// WithStrictLookup makes a missing validator an error (ErrValidatorNotFound)
// instead of silently skipping validation.
func WithStrictLookup() Option {
	return func(o *options) { o.strictLookup = true }
}

// WithModelType overrides the type used for lookup, for models whose dynamic
// type differs from the type validators are registered for.
func WithModelType(t reflect.Type) Option {
	return func(o *options) { o.modelType = t }
}

// WithValidatorFactory builds the validator from fn. The factory runs on first
// use, after an explicit validator and before services and discovery.
func WithValidatorFactory(fn ValidatorFactory) Option {
	return func(o *options) { o.factory = fn }
}

// WithLogger sets the binding logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRelaxedOrdering applies every validation result in completion order,
// even when a newer validation of the same scope already finished.
func WithRelaxedOrdering() Option {
	return func(o *options) { o.relaxedOrdering = true }
}

// WithConfig applies the lookup and ordering flags of cfg.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.disableDiscovery = cfg.DisableDiscovery
		o.strictLookup = cfg.StrictLookup
		o.relaxedOrdering = cfg.RelaxedOrdering
	}
}

func defaultOptions() *options {
	return &options{
		catalog: discovery.Default(),
		logger:  slog.Default(),
	}
}
