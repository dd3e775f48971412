// Package ruleset is a typed, code-first rule engine built on the rules of
// package validator.
//
// A RuleSet[T] lists property rules for model type T. Each rule reads its value
// through a getter, so no reflection happens at validation time:
//
//	addr := ruleset.New[Address]()
//	ruleset.Field(addr, "Line1", func(a *Address) string { return a.Line1 },
//		ruleset.Message(validator.Required, "You must enter Line 1"))
//
//	people := ruleset.New[Person]()
//	ruleset.Field(people, "Name", func(p *Person) string { return p.Name },
//		validator.Required,
//		ruleset.Bind(validator.MaxLenString, 50))
//	ruleset.Nested(people, "Address", func(p *Person) *Address { return p.Address }, addr)
//
// Rules registered inside Subset belong to a named rule subset and only run
// when an invocation includes it (validation.IncludeSubsets).
//
// RuleSet implements validation.Validator and validation.Describer.
package ruleset
