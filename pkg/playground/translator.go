package playground

import (
	"fmt"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// NewEnglishTranslator registers the default English messages on v and
// returns the translator to pass to WithTranslator.
func NewEnglishTranslator(v *validator.Validate) (ut.Translator, error) {
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator(locale.Locale())
	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("playground: register english translations: %w", err)
	}
	return trans, nil
}
