package validation

import (
	"slices"
	"strings"
)

const (
	// DefaultSubset names the rules that are not part of any explicit subset.
	DefaultSubset = "default"
	// AllSubsets selects every subset, including the default one.
	AllSubsets = "*"
)

// RuleInfo describes one property rule to a Selector.
// Path is the rule's path pattern, with collection indices written as "[]".
type RuleInfo struct {
	Path   string
	Name   string
	Subset string
}

// Selector decides whether a rule runs for the concrete property path.
type Selector interface {
	CanExecute(rule RuleInfo, path string, inv *Invocation) bool
}

// SelectorFunc adapts a function to Selector.
type SelectorFunc func(rule RuleInfo, path string, inv *Invocation) bool

func (f SelectorFunc) CanExecute(rule RuleInfo, path string, inv *Invocation) bool {
	return f(rule, path, inv)
}

type intersection []Selector

func (s intersection) CanExecute(rule RuleInfo, path string, inv *Invocation) bool {
	for _, sel := range s {
		if !sel.CanExecute(rule, path, inv) {
			return false
		}
	}
	return true
}

// Intersect returns a selector that accepts a rule only when every non-nil
// selector accepts it. With no selectors it accepts everything.
func Intersect(selectors ...Selector) Selector {
	out := make(intersection, 0, len(selectors))
	for _, s := range selectors {
		if s != nil {
			out = append(out, s)
		}
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}

// SubsetSelector accepts rules belonging to one of names. Rules with an empty
// subset belong to DefaultSubset. AllSubsets accepts everything. With no names
// only default rules run.
func SubsetSelector(names ...string) Selector {
	if len(names) == 0 {
		names = []string{DefaultSubset}
	}
	if slices.Contains(names, AllSubsets) {
		return SelectorFunc(func(RuleInfo, string, *Invocation) bool { return true })
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return SelectorFunc(func(rule RuleInfo, _ string, _ *Invocation) bool {
		subset := rule.Subset
		if subset == "" {
			subset = DefaultSubset
		}
		_, ok := set[subset]
		return ok
	})
}

// PropertySelector accepts rules whose path is one of paths, lies below one of
// them ("Address" includes "Address.Line1"), or matches a pattern entry where
// "[]" stands for any index ("Orders[].Total").
func PropertySelector(paths ...string) Selector {
	want := slices.Clone(paths)
	return SelectorFunc(func(rule RuleInfo, path string, _ *Invocation) bool {
		for _, p := range want {
			if matchesProperty(p, path) || matchesProperty(p, rule.Path) {
				return true
			}
		}
		return false
	})
}

func matchesProperty(selected, path string) bool {
	if selected == path {
		return true
	}
	if strings.HasPrefix(path, selected) {
		rest := path[len(selected):]
		if strings.HasPrefix(rest, ".") || strings.HasPrefix(rest, "[") {
			return true
		}
	}
	if strings.Contains(selected, "[]") {
		if generic := wildcardIndices(path); generic != path {
			return matchesProperty(selected, generic)
		}
	}
	return false
}

// wildcardIndices rewrites "Orders[2].Total" as "Orders[].Total".
func wildcardIndices(path string) string {
	var b strings.Builder
	b.Grow(len(path))
	skipping := false
	for _, r := range path {
		switch {
		case r == '[':
			skipping = true
			b.WriteRune(r)
		case r == ']':
			skipping = false
			b.WriteRune(r)
		case !skipping:
			b.WriteRune(r)
		}
	}
	return b.String()
}
