package fieldpath

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedPath   = errors.New("fieldpath: malformed property path")
	ErrUnknownProperty = errors.New("fieldpath: unknown property")
	ErrInvalidModel    = errors.New("fieldpath: model must be a non-nil pointer to a struct")
)

// PathResolutionError reports a path segment that does not exist on the type
// reached so far. An absent value is not a resolution error.
type PathResolutionError struct {
	Path    string
	Segment string
	Type    string
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("fieldpath: cannot resolve %q in path %q: no such property on %s", e.Segment, e.Path, e.Type)
}

func (e *PathResolutionError) Unwrap() error {
	return ErrUnknownProperty
}

// IsPathResolutionError reports whether err is or wraps a *PathResolutionError.
func IsPathResolutionError(err error) bool {
	var pre *PathResolutionError
	return errors.As(err, &pre)
}
