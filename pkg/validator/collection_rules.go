package validator

import "fmt"

// RequiredSlice fails on an empty or nil slice.
func RequiredSlice[T any](field string, value []T) Rule {
	return Rule{
		Check: func() bool { return len(value) > 0 },
		Error: fieldError(field, "field is required", "validation.required"),
	}
}

// MinLenSlice requires value to hold at least min elements.
func MinLenSlice[T any](field string, value []T, min int) Rule {
	return Rule{
		Check: func() bool { return len(value) >= min },
		Error: fieldError(field, fmt.Sprintf("must have at least %d items", min), "validation.min_items", "min", min),
	}
}

// MaxLenSlice allows value at most max elements.
func MaxLenSlice[T any](field string, value []T, max int) Rule {
	return Rule{
		Check: func() bool { return len(value) <= max },
		Error: fieldError(field, fmt.Sprintf("must have at most %d items", max), "validation.max_items", "max", max),
	}
}
