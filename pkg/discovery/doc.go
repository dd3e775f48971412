// Package discovery locates a default validator for a model type.
//
// Packages that define validators contribute a Source, usually at init time:
//
//	func init() {
//		discovery.Register(discovery.NewSource("customers",
//			discovery.For[Customer](func() validation.Validator { return customerRules() }),
//		))
//	}
//
// A Catalog scans its sources only when a lookup misses and remembers every
// source it scanned, so repeat lookups do not rescan. A failing source is
// logged, marked scanned and skipped; other sources are unaffected.
package discovery
