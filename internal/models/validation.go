package models

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
	return v
}

type FieldError struct {
	Field   string
	Message string
}

// ValidationError is returned from save hooks when a record breaks its
// schema rules. It maps to 400 Bad Request.
type ValidationError struct {
	Model  string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return fmt.Sprintf("%s validation failed: %s", e.Model, strings.Join(parts, ", "))
}

func (e *ValidationError) StatusCode() int {
	return http.StatusBadRequest
}

// Validate checks v against its validate tags and converts failures into a
// *ValidationError named after model.
func Validate(model string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{Model: model}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Path `%s` is required.", fe.Field())
	case "gte", "min":
		return fmt.Sprintf("Path `%s` (%v) is less than minimum allowed value (%s).", fe.Field(), fe.Value(), fe.Param())
	case "oneof":
		return fmt.Sprintf("`%v` is not a valid enum value for path `%s`.", fe.Value(), fe.Field())
	case "email":
		return fmt.Sprintf("Path `%s` is not a valid email address.", fe.Field())
	default:
		return fmt.Sprintf("Path `%s` failed on the '%s' rule.", fe.Field(), fe.Tag())
	}
}
