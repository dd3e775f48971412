package ruleset

import "errors"

var (
	ErrUnexpectedModel = errors.New("ruleset: unexpected model type")
	ErrNilModel        = errors.New("ruleset: model is nil")
)
