// Package validation adapts go-playground/validator to the domain error model.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	domainerrors "recipebook/internal/domain/errors"
	"recipebook/internal/errors"
)

// messageTag is the struct tag holding the user-facing message for a field.
// A rule specific message can be given as msg_<rule>, e.g. msg_bcryptlen.
const messageTag = "msg"

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// Validator checks input structs and reports failures as a ValidationError.
// It also satisfies echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their json names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})
	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("bcryptlen", bcryptLen)

	return &Validator{validate: v}
}

// Validate returns nil or a *domainerrors.ValidationError listing every failing field.
func (v *Validator) Validate(input any) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate input")
	}

	root := reflect.TypeOf(input)
	fields := make([]domainerrors.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, domainerrors.FieldError{
			Param: fe.Field(),
			Msg:   messageFor(root, fe),
		})
	}

	return domainerrors.NewValidationError(fields...)
}

func messageFor(root reflect.Type, fe validator.FieldError) string {
	if field, ok := lookupField(root, fe.StructNamespace()); ok {
		if msg := field.Tag.Get(messageTag + "_" + fe.Tag()); msg != "" {
			return msg
		}
		if msg := field.Tag.Get(messageTag); msg != "" {
			return msg
		}
	}

	return defaultMessage(fe)
}

// lookupField resolves a namespace such as "Input.Profile.Status" to its struct field.
func lookupField(root reflect.Type, namespace string) (reflect.StructField, bool) {
	parts := strings.Split(namespace, ".")
	if len(parts) < 2 {
		return reflect.StructField{}, false
	}

	current := root
	var field reflect.StructField
	for _, part := range parts[1:] {
		for current.Kind() == reflect.Pointer || current.Kind() == reflect.Slice {
			current = current.Elem()
		}
		if current.Kind() != reflect.Struct {
			return reflect.StructField{}, false
		}

		name, _, _ := strings.Cut(part, "[")
		var ok bool
		field, ok = current.FieldByName(name)
		if !ok {
			return reflect.StructField{}, false
		}
		current = field.Type
	}

	return field, true
}

func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " is required"
	case "email":
		return "Please include a valid email"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "url":
		return fe.Field() + " must be a valid URL"
	case "bcryptlen":
		return fe.Field() + " must be at most 72 bytes"
	default:
		return fe.Field() + " is invalid"
	}
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return !field.IsZero()
	}

	return strings.TrimSpace(field.String()) != ""
}

// bcryptLen rejects strings longer than bcrypt can hash. max counts runes, this counts bytes.
func bcryptLen(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	return len(field.String()) <= MaxPasswordBytes
}
