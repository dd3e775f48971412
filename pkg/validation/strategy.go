package validation

// Strategy collects the options that narrow which rules an invocation runs.
type Strategy struct {
	subsets    []string
	properties []string
	selectors  []Selector
	data       map[string]any
}

// StrategyOption configures a Strategy.
type StrategyOption func(*Strategy)

// IncludeSubsets runs only rules from the named subsets. Use DefaultSubset to
// keep the unnamed rules as well.
func IncludeSubsets(names ...string) StrategyOption {
	return func(s *Strategy) { s.subsets = append(s.subsets, names...) }
}

// IncludeAllSubsets runs rules from every subset.
func IncludeAllSubsets() StrategyOption {
	return IncludeSubsets(AllSubsets)
}

// IncludeProperties runs only rules addressing the given property paths.
func IncludeProperties(paths ...string) StrategyOption {
	return func(s *Strategy) { s.properties = append(s.properties, paths...) }
}

// UseSelector adds a custom selector; every selector must accept a rule.
func UseSelector(sel Selector) StrategyOption {
	return func(s *Strategy) {
		if sel != nil {
			s.selectors = append(s.selectors, sel)
		}
	}
}

// WithData attaches a value that rules can read from Invocation.Data.
func WithData(key string, value any) StrategyOption {
	return func(s *Strategy) {
		if s.data == nil {
			s.data = make(map[string]any)
		}
		s.data[key] = value
	}
}

// Selector combines the strategy's filters with logical AND.
func (s *Strategy) Selector() Selector {
	parts := []Selector{SubsetSelector(s.subsets...)}
	if len(s.properties) > 0 {
		parts = append(parts, PropertySelector(s.properties...))
	}
	parts = append(parts, s.selectors...)
	return Intersect(parts...)
}

// Invocation is what a Validator receives: the model plus the selector that
// decides which rules run.
type Invocation struct {
	Model    any
	Selector Selector
	Data     map[string]any
}

// NewInvocation builds an invocation for model. Options are applied in order;
// a panicking option is not recovered.
func NewInvocation(model any, opts ...StrategyOption) *Invocation {
	var s Strategy
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return &Invocation{
		Model:    model,
		Selector: s.Selector(),
		Data:     s.data,
	}
}

// CanExecute reports whether the invocation's selector accepts rule at path.
// A nil selector accepts everything.
func (inv *Invocation) CanExecute(rule RuleInfo, path string) bool {
	if inv == nil || inv.Selector == nil {
		return true
	}
	return inv.Selector.CanExecute(rule, path, inv)
}
