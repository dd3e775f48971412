package playground

import "errors"

var (
	ErrUnexpectedModel = errors.New("playground: unexpected model type")
	ErrNilModel        = errors.New("playground: model is nil")
	ErrInvalidRuleMap  = errors.New("playground: invalid rule map")
)
