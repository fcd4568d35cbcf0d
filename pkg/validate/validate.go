package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/go-playground/validator/v10"
)

var (
	phonePattern  = regexp.MustCompile(`^[0-9]{10}$`)
	postalPattern = regexp.MustCompile(`^[0-9]{6}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("postal", func(fl validator.FieldLevel) bool {
		return IsPostalCode(fl.Field().String())
	})
	_ = v.RegisterValidation("luhn", func(fl validator.FieldLevel) bool {
		return IsLuhn(fl.Field().String())
	})
	return v
}

func IsLuhn(s string) bool {
	return goluhn.Validate(s) == nil
}

// IsPhone accepts exactly ten ASCII digits.
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsPostalCode accepts exactly six ASCII digits.
func IsPostalCode(s string) bool {
	return postalPattern.MatchString(s)
}

// Struct validates v against its `validate` tags. Failures are returned as a
// map from the JSON path of the field to a readable message; nil means v is
// valid.
func Struct(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return map[string]string{"": err.Error()}
	}
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[fieldPath(fe.Namespace())] = message(fe)
	}
	return fields
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "phone":
		return "must be exactly 10 digits"
	case "postal":
		return "must be exactly 6 digits"
	case "luhn":
		return "must be a valid order number"
	}
	return "is invalid"
}
