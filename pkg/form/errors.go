package form

import "errors"

var (
	ErrNilModel     = errors.New("form: model must not be nil")
	ErrInvalidModel = errors.New("form: model must be a pointer to a struct")
)
