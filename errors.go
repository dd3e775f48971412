package formvalidation

import "errors"

var (
	ErrNilState          = errors.New("formvalidation: form state is nil")
	ErrValidatorNotFound = errors.New("formvalidation: no validator found for model type")
	ErrBindingClosed     = errors.New("formvalidation: binding is closed")
	ErrInvalidConfig     = errors.New("formvalidation: invalid configuration")
)
