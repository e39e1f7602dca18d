package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their JSON names so messages line up with request bodies.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(f.Name)
		}
		return name
	})

	if err := validate.RegisterValidation("printable", validatePrintable); err != nil {
		panic(fmt.Sprintf("failed to register printable validation: %v", err))
	}
}

// Validate validates a struct using tags
func Validate(s interface{}) error {
	return validate.Struct(s)
}

func validatePrintable(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// ValidationError represents a validation error
type ValidationError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// FormatError formats a validation error into human-readable messages.
// Errors that did not come from the validator yield an empty slice.
func FormatError(err error) []ValidationError {
	var validationErrors []ValidationError

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return validationErrors
	}

	for _, e := range errs {
		var message string

		switch e.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", e.Field())
		case "email":
			message = "Invalid email format"
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters long", e.Field(), e.Param())
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters long", e.Field(), e.Param())
		case "printable":
			message = fmt.Sprintf("%s must not contain control characters", e.Field())
		default:
			message = fmt.Sprintf("Invalid value for %s", e.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field: e.Field(),
			Error: message,
		})
	}

	return validationErrors
}

// Fields collapses a validation error into a field -> message map. Only the
// first failure per field is kept.
func Fields(err error) map[string]string {
	fields := make(map[string]string)
	for _, e := range FormatError(err) {
		if _, ok := fields[e.Field]; !ok {
			fields[e.Field] = e.Error
		}
	}
	return fields
}
