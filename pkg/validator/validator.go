package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Los errores se reportan con el nombre JSON del campo.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate ejecuta la validación por tags de go-playground/validator.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatValidationErrors convierte validator.ValidationErrors en campo → mensaje.
func FormatValidationErrors(err error) map[string]string {
	out := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return out
	}
	for _, e := range ve {
		out[e.Field()] = formatFieldError(e)
	}
	return out
}

// FirstField devuelve el primer campo con error (o "" si no hay).
func FirstField(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return ve[0].Field()
	}
	return ""
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "campo obligatorio"
	case "uuid", "uuid4":
		return "debe ser un UUID válido"
	case "min":
		return fmt.Sprintf("mínimo %s", e.Param())
	case "max":
		return fmt.Sprintf("máximo %s", e.Param())
	case "email":
		return "email inválido"
	case "gt":
		return fmt.Sprintf("debe ser mayor que %s", e.Param())
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual a %s", e.Param())
	case "datetime":
		return fmt.Sprintf("formato de fecha esperado %s", e.Param())
	case "oneof":
		return fmt.Sprintf("valores permitidos: %s", e.Param())
	default:
		return fmt.Sprintf("validación '%s' fallida", e.Tag())
	}
}
