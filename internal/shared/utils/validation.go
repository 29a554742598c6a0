package utils

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/coffeetech/farms/internal/shared/errors"
)

var registerOnce sync.Once

// RegisterValidators installs the custom rules on gin's binding validator and
// makes field errors report JSON names.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonTagName)
		_ = v.RegisterValidation("notblank", notBlank)
	})
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func notBlank(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(fl.Field().String()) != ""
}

// BindingError converts a ShouldBindJSON/ShouldBindQuery failure into a 400
// AppError listing each offending field.
func BindingError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewValidationError("Solicitud inválida", err.Error())
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldErrorMessage(fe))
	}
	return errors.NewValidationError("Solicitud inválida", msgs...)
}

func fieldErrorMessage(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es obligatorio", field)
	case "notblank":
		return fmt.Sprintf("%s no puede estar vacío", field)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s no puede tener más de %s caracteres", field, param)
		}
		return fmt.Sprintf("%s debe ser como máximo %s", field, param)
	case "gt":
		return fmt.Sprintf("%s debe ser mayor que %s", field, param)
	case "gte":
		return fmt.Sprintf("%s debe ser mayor o igual que %s", field, param)
	case "lte":
		return fmt.Sprintf("%s debe ser menor o igual que %s", field, param)
	default:
		return fmt.Sprintf("%s no cumple la regla '%s'", field, fe.Tag())
	}
}
