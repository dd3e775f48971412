package playground

import (
	"reflect"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// MessageFunc renders the message of one field error.
type MessageFunc func(fe validator.FieldError) string

type ruleMap struct {
	model any
	rules map[string]string
}

type options struct {
	validate   *validator.Validate
	translator ut.Translator
	message    MessageFunc
	ruleMaps   []ruleMap
}

// Option configures a Validator.
type Option func(*options)

// WithValidate uses v instead of a fresh validator, for example one with
// custom validations or translations registered.
func WithValidate(v *validator.Validate) Option {
	return func(o *options) {
		if v != nil {
			o.validate = v
		}
	}
}

// WithTranslator renders messages with fe.Translate(t).
func WithTranslator(t ut.Translator) Option {
	return func(o *options) {
		o.translator = t
	}
}

// WithMessageFunc renders messages with fn. It takes precedence over a translator.
func WithMessageFunc(fn MessageFunc) Option {
	return func(o *options) {
		o.message = fn
	}
}

// WithRuleMap registers validation rules for the fields of model's struct
// type without struct tags. Keys are field names, values use tag syntax.
func WithRuleMap(model any, rules map[string]string) Option {
	return func(o *options) {
		o.ruleMaps = append(o.ruleMaps, ruleMap{model: model, rules: rules})
	}
}

func structType(model any) reflect.Type {
	t := reflect.TypeOf(model)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
