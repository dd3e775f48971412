package validator

// RequiredComparable fails on the zero value of T.
func RequiredComparable[T comparable](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool { return value != zero },
		Error: fieldError(field, "field is required", "validation.required"),
	}
}

// NotNil fails when an optional value has not been provided.
func NotNil[T any](field string, value *T) Rule {
	return Rule{
		Check: func() bool { return value != nil },
		Error: fieldError(field, "field is required", "validation.required"),
	}
}

// OneOf fails unless value equals one of allowed.
func OneOf[T comparable](field string, value T, allowed ...T) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if a == value {
					return true
				}
			}
			return false
		},
		Error: fieldError(field, "must be one of the allowed values", "validation.one_of", "allowed", allowed),
	}
}
