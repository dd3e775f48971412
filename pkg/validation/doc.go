// Package validation defines the contract between form bindings and rule
// engines: what an engine is asked to validate (Invocation), how it decides
// which rules run (Selector, Strategy), and what it reports back (Result,
// Failure).
//
// Engines implement Validator. Engines that can list their rules per property
// path also implement Describer, which lets a binding skip field validation
// entirely when a field has no rules.
//
// # Selecting rules
//
// A Selector sees each property rule before it runs. Selectors compose with
// Intersect, which is a logical AND:
//
//	inv := validation.NewInvocation(model,
//		validation.IncludeSubsets("Names"),
//		validation.IncludeProperties("Address.Line1"),
//	)
//
// Without IncludeSubsets only rules outside every named subset run, matching
// how rule subsets are opt-in.
//
// # Paths
//
// Failure.Path is the concrete root-relative path ("Orders[2].Total").
// RuleInfo.Path is the rule's pattern, where collection indices are "[]".
package validation
