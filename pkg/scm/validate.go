package scm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validatable is implemented by request models that carry their own
// validation. The client validates such inputs before any network call and
// surfaces failures as invalid-object errors.
type Validatable interface {
	Validate() error
}

var modelValidator = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs tag-based validation and converts the first failure
// into an invalid-object error.
func validateStruct(model any) error {
	err := modelValidator.Struct(model)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !asValidationErrors(err, &fieldErrs) || len(fieldErrs) == 0 {
		return NewInvalidObjectError(err.Error())
	}

	first := fieldErrs[0]

	return NewInvalidObjectError(fmt.Sprintf("field %q failed validation on the %q rule", first.Field(), first.Tag()))
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = fieldErrs
	}

	return ok
}

// validateContainer enforces the container invariant: every configuration
// object belongs to exactly one of folder, snippet, or device.
func validateContainer(folder, snippet, device string) error {
	count := 0
	for _, container := range []string{folder, snippet, device} {
		if container != "" {
			count++
		}
	}

	if count != 1 {
		return NewInvalidObjectError("exactly one of 'folder', 'snippet', or 'device' must be provided")
	}

	return nil
}

// validateExactlyOne enforces a one-of rule across a set of named fields.
func validateExactlyOne(what string, fields map[string]string) error {
	var set []string

	for name, value := range fields {
		if value != "" {
			set = append(set, name)
		}
	}

	if len(set) == 1 {
		return nil
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}

	sort.Strings(names)

	return NewInvalidObjectError(fmt.Sprintf("exactly one %s must be provided (one of %s)", what, strings.Join(names, ", ")))
}

// validateTagColor checks a tag color against the accepted palette. Empty
// is allowed; the server treats it as no color.
func validateTagColor(color string) error {
	if color == "" {
		return nil
	}

	for _, known := range TagColors {
		if color == known {
			return nil
		}
	}

	return NewInvalidObjectError(fmt.Sprintf("color %q is not a valid tag color", color))
}
