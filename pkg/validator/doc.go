// Package validator provides the rule vocabulary used by rule-set definitions:
// small constructors that capture a value and return a Rule pairing a boolean
// Check with translation-friendly error metadata.
//
// Each source file groups a family of rules (`string_rules.go`,
// `numeric_rules.go`, `format_rules.go`, ...). Constructors hold no state;
// every call returns a fresh Rule.
//
// Core building blocks:
//   - Rule             - Check func plus the ValidationError reported on failure
//   - ValidationError  - field, message, severity and i18n key/values
//   - ValidationErrors - slice type that implements the error interface
//   - Numeric          - generic constraint used by numeric helpers
//
// # Usage
//
// Rules can be evaluated directly:
//
//	err := validator.Apply(
//		validator.Required("email", email),
//		validator.ValidEmail("email", email),
//		validator.MinNum("age", age, 18),
//	)
//
// or adapted into rule-set checks (see package ruleset), where the field name
// is filled in with the property path being validated:
//
//	ruleset.Field(rs, "FirstName", getFirstName,
//		ruleset.Message(validator.Required, "You must enter your first name"),
//	)
//
// WithMessage and WithSeverity return modified copies, so a shared Rule is
// never mutated.
package validator
