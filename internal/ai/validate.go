package ai

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput checks an input record and returns a *ValidationError for the
// first violated constraint.
func validateInput(in any) error {
	fe, err := firstFieldError(in)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if fe == nil {
		return nil
	}
	return &ValidationError{Field: fieldPath(fe), Rule: fe.Tag(), Message: describe(fe)}
}

// validateOutput checks a decoded model reply. The error is deliberately not a
// ValidationError: a bad reply is a generation failure, not a user mistake.
func validateOutput(out any) error {
	fe, err := firstFieldError(out)
	if err != nil {
		return err
	}
	if fe == nil {
		return nil
	}
	return fmt.Errorf("field %s %s", fieldPath(fe), describe(fe))
}

func firstFieldError(v any) (validator.FieldError, error) {
	err := validate.Struct(v)
	if err == nil {
		return nil, nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0], nil
	}
	return nil, err
}

// fieldPath drops the root struct name from the namespace:
// "VideoScriptOutput.script[0].visuals" -> "script[0].visuals".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	kind := fe.Kind()
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		switch kind {
		case reflect.String:
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		case reflect.Slice, reflect.Array:
			return fmt.Sprintf("must contain at least %s items", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if kind == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "datauri":
		return "must be a data URI"
	}
	return fmt.Sprintf("failed the %q constraint", fe.Tag())
}
