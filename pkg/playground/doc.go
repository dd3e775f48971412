// Package playground adapts github.com/go-playground/validator/v10 to the
// validation.Validator contract.
//
// Rules come from `validate` struct tags, or from rule maps for types that
// cannot carry tags:
//
//	type Person struct {
//		Name    string   `validate:"required,max=50" subset:"Names"`
//		Address *Address
//	}
//
//	v := validator.New(validator.WithRequiredStructEnabled())
//	trans, _ := playground.NewEnglishTranslator(v)
//	engine := playground.New[Person](playground.WithValidate(v), playground.WithTranslator(trans))
//
// The engine always evaluates every tag and then drops failures the
// invocation's selector rejects, so subset and property filters only affect
// what is reported. Failure paths are the struct namespace without the root
// type name ("Address.Line1", "Orders[2].Total").
package playground
