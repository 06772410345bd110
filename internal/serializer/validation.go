package serializer

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"hackerNews/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var linkSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ftp":   true,
	"ftps":  true,
}

// isWebURL accepts absolute http(s) and ftp(s) links with a host.
func isWebURL(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if strings.ContainsAny(s, " \t\r\n") {
		return false
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return linkSchemes[strings.ToLower(u.Scheme)] && u.Opaque == "" && u.Hostname() != ""
}

// NewValidator reports field errors under their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration fails only for an empty tag or a nil func.
	_ = v.RegisterValidation("web_url", isWebURL)
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate runs struct validation and converts failures into a *models.ValidationError.
func Validate(v *validator.Validate, input interface{}) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("ошибка валидации: %w", err)
	}

	result := &models.ValidationError{}
	for _, fe := range validationErrors {
		result.Add(fieldName(fe), fieldMessage(fe))
	}
	return result
}

// fieldName drops the struct prefix and keeps the JSON path, e.g. "liked_by[0]".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Обязательное поле."
	case "web_url":
		return "Введите правильный URL."
	case "notblank":
		return "Это поле не может быть пустым."
	case "max":
		return fmt.Sprintf("Убедитесь, что это значение содержит не более %s символов.", fe.Param())
	case "gt":
		return "Требуется корректный идентификатор."
	default:
		return "Некорректное значение."
	}
}

func InvalidPKMessage(id int64) string {
	return fmt.Sprintf("Недопустимый первичный ключ \"%d\" - объект не существует.", id)
}

func InvalidPK(field string, id int64) *models.ValidationError {
	return models.NewValidationError(field, InvalidPKMessage(id))
}
