package validator

import (
	"errors"
	"slices"
	"strings"

	"github.com/dmitrymomot/formvalidation/pkg/validation"
)

// Numeric is the set of types accepted by the numeric rules.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError is one rule failure. Field is the property path the rule
// was evaluated for; the zero Severity is validation.SeverityError.
type ValidationError struct {
	Field             string
	Message           string
	Severity          validation.Severity
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors is an ordered list of rule failures. It is returned as an
// error by Apply and by the rule-set engine's Errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, e := range ve {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Field)
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Add appends err.
func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Has reports whether any failure belongs to field.
func (ve ValidationErrors) Has(field string) bool {
	return slices.ContainsFunc(ve, func(e ValidationError) bool { return e.Field == field })
}

// Get returns the messages recorded for field in insertion order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, e := range ve {
		if e.Field == field {
			messages = append(messages, e.Message)
		}
	}
	return messages
}

// Fields lists the fields with failures in first-failure order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	for _, e := range ve {
		if !slices.Contains(fields, e.Field) {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

// IsEmpty reports whether ve holds no errors.
func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule is a deferred check and the failure it reports.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage returns a copy of the rule reporting message instead of the default text.
func (r Rule) WithMessage(message string) Rule {
	r.Error.Message = message
	return r
}

// WithSeverity returns a copy of the rule reporting its failure at severity s.
func (r Rule) WithSeverity(s validation.Severity) Rule {
	r.Error.Severity = s
	return r
}

// Apply evaluates every rule and returns the failures as ValidationErrors,
// or nil when all rules pass.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs.Add(rule.Error)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors returns the ValidationErrors err is or wraps, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var errs ValidationErrors
	if err != nil && errors.As(err, &errs) {
		return errs
	}
	return nil
}

// IsValidationError reports whether err is or wraps ValidationErrors.
func IsValidationError(err error) bool {
	var errs ValidationErrors
	return err != nil && errors.As(err, &errs)
}
