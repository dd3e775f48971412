package logger

import (
	"log/slog"
	"reflect"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// BindingID records the form binding identifier under the key "binding_id".
func BindingID(id string) slog.Attr {
	return slog.String("binding_id", id)
}

// Scope records the validation scope ("full" or "field") under the key "scope".
func Scope(scope string) slog.Attr {
	return slog.String("scope", scope)
}

// Path records a property path under the key "path".
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Field records a field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// ModelType records a model type under the key "model_type".
// If t is nil, it returns an empty Attr.
func ModelType(t reflect.Type) slog.Attr {
	if t == nil {
		return slog.Attr{}
	}
	return slog.String("model_type", t.String())
}

// Source records a discovery source name under the key "source".
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// Count records a count under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
