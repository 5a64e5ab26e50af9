package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormValidator valida los DTOs de formulario con las etiquetas `validate` y devuelve
// los mensajes indexados por el nombre del campo del formulario.
type FormValidator struct {
	v *validator.Validate
}

// NewFormValidator construye el validador usando la etiqueta `form` como nombre de campo.
func NewFormValidator() *FormValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &FormValidator{v: v}
}

// Validate devuelve nil si s es válido; si no, un mensaje por campo.
func (f *FormValidator) Validate(s interface{}) map[string]string {
	err := f.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, ok := out[fe.Field()]; !ok {
			out[fe.Field()] = message(fe)
		}
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio."
	case "email":
		return "Ingresa un email válido."
	case "eqfield":
		return "Las contraseñas no coinciden."
	case "max":
		return fmt.Sprintf("Máximo %s caracteres.", fe.Param())
	case "min":
		return fmt.Sprintf("Mínimo %s caracteres.", fe.Param())
	case "url":
		return "Ingresa una URL válida."
	case "number":
		return "Debe ser un número entero."
	default:
		return "Valor inválido."
	}
}
