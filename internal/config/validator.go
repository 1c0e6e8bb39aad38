package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	jaTranslations "github.com/go-playground/validator/v10/translations/ja"
)

// Validate checks every value the API clients need, so a missing key is reported at startup
// instead of on the first request. Messages are translated into locale ("en" or "ja").
func (cfg *Config) Validate(locale string) error {
	validate, trans, err := newValidator(locale)
	if err != nil {
		return err
	}

	err = validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate.Struct > %w", err)
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fieldErr.Translate(trans))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}

func newValidator(locale string) (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, ja.New())
	trans, found := uni.GetTranslator(locale)
	if !found {
		trans, _ = uni.GetTranslator("en")
	}

	var err error
	switch trans.Locale() {
	case "ja":
		err = jaTranslations.RegisterDefaultTranslations(validate, trans)
	default:
		err = enTranslations.RegisterDefaultTranslations(validate, trans)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("notion_id", isNotionID); err != nil {
		return nil, nil, fmt.Errorf("failed to register notion_id validation: %w", err)
	}
	if err := validate.RegisterTranslation("notion_id", trans, func(ut ut.Translator) error {
		message := "{0} must be a 32 character Notion ID"
		if ut.Locale() == "ja" {
			message = "{0}は32文字のNotion IDでなければなりません"
		}
		return ut.Add("notion_id", message, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("notion_id", namespace(fe))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register notion_id translation: %w", err)
	}
	if err := validate.RegisterTranslation("required", trans, func(ut ut.Translator) error {
		message := "{0} is a required field"
		if ut.Locale() == "ja" {
			message = "{0}は必須フィールドです"
		}
		return ut.Add("required", message, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("required", namespace(fe))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register required translation: %w", err)
	}

	return validate, trans, nil
}

func namespace(fe validator.FieldError) string {
	return strings.TrimPrefix(fe.Namespace(), "Config.")
}

// isNotionID accepts a database ID with or without the UUID dashes.
func isNotionID(fl validator.FieldLevel) bool {
	id := strings.ReplaceAll(fl.Field().String(), "-", "")
	if len(id) != 32 {
		return false
	}
	for _, r := range id {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
