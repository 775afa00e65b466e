package users

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
)

// MinNameLength is the minimum number of characters a trimmed name must have.
const MinNameLength = 3

// ValidationError reports a name that violates the validation rule. Message
// is meant to be shown to API clients as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// nameInput mirrors the request body so messages use the JSON field name.
type nameInput struct {
	Nombre string `json:"nombre" validate:"required,min=3"`
}

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	spanish := es.New()
	trans, _ = ut.New(spanish, spanish).GetTranslator("es")

	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := es_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic("users: registering validator translations: " + err.Error())
	}
}

// Validate checks name against the validation rule and returns the trimmed
// name on success.
func Validate(name string) (string, error) {
	in := nameInput{Nombre: strings.TrimSpace(name)}
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return "", &ValidationError{Field: verrs[0].Field(), Message: verrs[0].Translate(trans)}
		}
		return "", err
	}
	return in.Nombre, nil
}

// NameFromInput extracts a name from a decoded request value. It only checks
// presence and type; length is left to Validate.
func NameFromInput(v any) (string, error) {
	switch name := v.(type) {
	case nil:
		return "", &ValidationError{Field: "nombre", Message: "nombre es un campo requerido"}
	case string:
		return name, nil
	default:
		return "", &ValidationError{Field: "nombre", Message: "nombre debe ser una cadena de texto"}
	}
}
