package validator

import "fmt"

// MinNum checks value >= min.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool { return value >= min },
		Error: fieldError(field, fmt.Sprintf("must be at least %v", min), "validation.min", "min", min),
	}
}

// MaxNum checks value <= max.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool { return value <= max },
		Error: fieldError(field, fmt.Sprintf("must be at most %v", max), "validation.max", "max", max),
	}
}

// LessThanNum checks value < limit.
func LessThanNum[T Numeric](field string, value T, limit T) Rule {
	return Rule{
		Check: func() bool { return value < limit },
		Error: fieldError(field, fmt.Sprintf("must be less than %v", limit), "validation.less_than", "limit", limit),
	}
}

// GreaterThanNum checks value > limit.
func GreaterThanNum[T Numeric](field string, value T, limit T) Rule {
	return Rule{
		Check: func() bool { return value > limit },
		Error: fieldError(field, fmt.Sprintf("must be greater than %v", limit), "validation.greater_than", "limit", limit),
	}
}

// RangeNum checks min <= value <= max.
func RangeNum[T Numeric](field string, value T, min T, max T) Rule {
	return Rule{
		Check: func() bool { return value >= min && value <= max },
		Error: fieldError(field, fmt.Sprintf("must be between %v and %v", min, max),
			"validation.range", "min", min, "max", max),
	}
}

// Min is shorthand for MinNum.
func Min[T Numeric](field string, value T, min T) Rule { return MinNum(field, value, min) }
// Max is shorthand for MaxNum.
func Max[T Numeric](field string, value T, max T) Rule { return MaxNum(field, value, max) }
