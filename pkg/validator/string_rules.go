package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// fieldError builds the ValidationError shared by the built-in rules. extra
// holds translation values beyond the field name, as key/value pairs.
func fieldError(field, message, key string, extra ...any) ValidationError {
	values := map[string]any{"field": field}
	for i := 0; i+1 < len(extra); i += 2 {
		values[fmt.Sprint(extra[i])] = extra[i+1]
	}
	return ValidationError{
		Field:             field,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	}
}

// Required fails on an empty or whitespace-only string.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: fieldError(field, "field is required", "validation.required"),
	}
}

// RequiredString is Required under its explicit name.
func RequiredString(field, value string) Rule {
	return Required(field, value)
}

// MinLenString checks a lower bound on length, counted in runes.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) >= min },
		Error: fieldError(field, fmt.Sprintf("must be at least %d characters long", min),
			"validation.min_length", "min", min),
	}
}

// MaxLenString checks an upper bound on length, counted in runes.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= max },
		Error: fieldError(field, fmt.Sprintf("must be at most %d characters long", max),
			"validation.max_length", "max", max),
	}
}

// LenBetweenString checks that the rune length lies in [min, max].
func LenBetweenString(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			n := utf8.RuneCountInString(value)
			return n >= min && n <= max
		},
		Error: fieldError(field, fmt.Sprintf("must be between %d and %d characters long", min, max),
			"validation.length_between", "min", min, "max", max),
	}
}

// MinLen is shorthand for MinLenString.
func MinLen(field, value string, min int) Rule { return MinLenString(field, value, min) }
// MaxLen is shorthand for MaxLenString.
func MaxLen(field, value string, max int) Rule { return MaxLenString(field, value, max) }
