package validation

import "fmt"

// Severity classifies a failure. The zero value is SeverityError.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Failure is a single rule violation reported by a rule engine.
// Path is root-relative (e.g. "Orders[2].Total"); an empty Path addresses the model itself.
type Failure struct {
	Path     string
	Message  string
	Severity Severity
	Rule     string
	Value    any
}

// Result is the outcome of one Validator invocation. Failures keep the order
// in which the engine produced them.
type Result struct {
	Failures []Failure
}

// IsValid reports whether no failure of any severity was produced.
func (r Result) IsValid() bool {
	return len(r.Failures) == 0
}

// HasErrors reports whether at least one failure has SeverityError.
func (r Result) HasErrors() bool {
	for _, f := range r.Failures {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ForPath returns the failures reported for exactly path.
func (r Result) ForPath(path string) []Failure {
	var out []Failure
	for _, f := range r.Failures {
		if f.Path == path {
			out = append(out, f)
		}
	}
	return out
}
