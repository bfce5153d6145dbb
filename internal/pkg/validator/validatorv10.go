package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/shandysiswandi/payloadguard/internal/pkg/strcase"
)

// TagUsernameCharset accepts strings made only of ASCII letters, digits and
// underscores, with at least one letter or digit.
const TagUsernameCharset = "username_charset"

// varFieldKey is the key used in V10ValidationError for single-value checks.
const varFieldKey = "value"

var reAlphanumeric = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// V10Validator implements Validator using go-playground/validator v10.
//
// It is safe for concurrent use once constructed.
type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// V10ValidationError is a field-to-message map returned when validation fails.
//
// Keys are field names in snake_case to match typical JSON conventions.
type V10ValidationError map[string]string

// Error implements the error interface.
func (vs V10ValidationError) Error() string {
	if len(vs) == 0 {
		return "validation error"
	}

	b, err := json.Marshal(vs)
	if err != nil {
		return fmt.Sprintf("validation error (failed to marshal: %v)", err)
	}
	return string(b)
}

// Values returns the field error map.
func (vs V10ValidationError) Values() map[string]string {
	return vs
}

// NewV10Validator constructs a V10Validator with English translations and custom rules.
func NewV10Validator() (*V10Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	if err := v10CustomValidation(validate, enTrans); err != nil {
		return nil, err
	}

	return &V10Validator{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// Validate validates a struct and returns a V10ValidationError on failure.
func (v *V10Validator) Validate(data any) error {
	if err := v.validate.Struct(data); err != nil {
		return v.translate(err, func(fe validator.FieldError) string {
			return strcase.ToLowerSnake(fe.Field())
		})
	}

	return nil
}

// Var validates a single value and returns a V10ValidationError keyed by "value" on failure.
func (v *V10Validator) Var(value any, tag string) error {
	if err := v.validate.Var(value, tag); err != nil {
		return v.translate(err, func(validator.FieldError) string {
			return varFieldKey
		})
	}

	return nil
}

func (v *V10Validator) translate(err error, key func(validator.FieldError) string) error {
	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		return err
	}

	errV10 := make(V10ValidationError, len(validateErrs))
	for _, fe := range validateErrs {
		k := key(fe)
		if _, exists := errV10[k]; exists {
			continue
		}
		errV10[k] = strings.TrimSpace(fe.Translate(v.translator))
	}

	return errV10
}

func usernameCharset(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return reAlphanumeric.MatchString(strings.ReplaceAll(s, "_", ""))
}

func v10CustomValidation(validate *validator.Validate, enTrans ut.Translator) error {
	if err := validate.RegisterValidation(TagUsernameCharset, usernameCharset); err != nil {
		return err
	}

	return validate.RegisterTranslation(TagUsernameCharset, enTrans,
		func(ut ut.Translator) error {
			return ut.Add(TagUsernameCharset, "{0} can contain only letters, digits and underscores", false)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(fe.Tag(), fe.Field())
			if err != nil {
				slog.Warn("warning: error translating", "FieldError", fe, "error", err)
				return fe.Error()
			}

			return t
		},
	)
}
