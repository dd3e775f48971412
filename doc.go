// Package formvalidation connects form state to pluggable rule engines.
//
// A form.State holds a model, per-field messages and three events: validation
// requested, field changed and validation state changed. Attach subscribes a
// Binding to the first two. On a validation request the binding runs the
// model's validator over the whole model and replaces its messages. On a field
// change it resolves the field to a property path, runs only the rules for
// that path and replaces that field's messages. Every applied result raises
// exactly one validation-state-changed notification.
//
// Basic usage:
//
//	rs := ruleset.New[Person]()
//	ruleset.Field(rs, "FirstName", func(p *Person) string { return p.FirstName },
//		ruleset.Message(validator.Required, "You must enter your first name"))
//
//	state, _ := form.NewState(&person)
//	b, err := formvalidation.Attach(state, formvalidation.WithValidator(rs))
//	if err != nil {
//		return err
//	}
//	defer b.Close()
//
//	ok, err := state.Validate(ctx)
//
// # Validator lookup
//
// Without WithValidator the binding looks the validator up on first use, in
// order: WithValidatorFactory, WithServices, then the discovery catalog
// (discovery.Default unless WithCatalog is given). A missing validator skips
// validation, or fails with ErrValidatorNotFound under WithStrictLookup.
//
// # Rule selection
//
// WithStrategy applies subset and property selection to every validation;
// Binding.Validate applies one for a single call. WithRuleFilter adds a
// predicate that must also accept a rule. A field validation always restricts
// rules to the field's path on top of these.
//
// # Ordering
//
// Validations run concurrently. A result that finishes after a newer
// validation of the same scope started is discarded unless
// WithRelaxedOrdering is set. The most recent validation is published under
// PendingValidationKey in the form's properties.
//
// # Configuration
//
// LoadConfig reads the FORMVALIDATION_* environment variables; WithConfig
// applies them to a binding and Config.NewLogger builds the matching logger.
package formvalidation
