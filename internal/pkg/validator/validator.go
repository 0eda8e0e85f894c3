package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate returns a field-keyed error map, nil when the struct is valid.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[strings.ToLower(err.Field())] = err.Tag()
	}
	return errors
}

// ValidateVar checks a single value against a tag expression.
func ValidateVar(v interface{}, tag string) bool {
	return validate.Var(v, tag) == nil
}
