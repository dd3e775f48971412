package logger_test

import (
	"errors"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formvalidation/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestModelType(t *testing.T) {
	type person struct{}

	attr := logger.ModelType(reflect.TypeFor[person]())
	require.Equal(t, "model_type", attr.Key)
	assert.Equal(t, "logger_test.person", attr.Value.String())

	assert.True(t, logger.ModelType(nil).Equal(slog.Attr{}))
}

func TestStringAttrs(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want string
	}{
		{"component", logger.Component("formvalidation"), "component", "formvalidation"},
		{"binding", logger.BindingID("b-1"), "binding_id", "b-1"},
		{"scope", logger.Scope("full"), "scope", "full"},
		{"path", logger.Path("Address.Line1"), "path", "Address.Line1"},
		{"field", logger.Field("Line1"), "field", "Line1"},
		{"source", logger.Source("models"), "source", "models"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.String())
		})
	}
}

func TestNumericAttrs(t *testing.T) {
	count := logger.Count(3)
	assert.Equal(t, "count", count.Key)
	assert.Equal(t, int64(3), count.Value.Int64())

	d := logger.Duration(2 * time.Second)
	assert.Equal(t, "duration", d.Key)
	assert.Equal(t, 2*time.Second, d.Value.Duration())
}
