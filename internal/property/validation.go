package property

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports field errors under their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// messages maps validator tags to friendly messages.
var messages = map[string]string{
	"required": "The field '%s' is required.",
	"gte":      "The field '%s' must be greater than or equal to %s.",
}

func message(e validator.FieldError) string {
	msg, ok := messages[e.Tag()]
	if !ok {
		return fmt.Sprintf("The field '%s' is invalid: %s.", e.Field(), e.Tag())
	}
	if strings.Count(msg, "%s") == 2 {
		return fmt.Sprintf(msg, e.Field(), e.Param())
	}
	return fmt.Sprintf(msg, e.Field())
}

// validateStruct returns a *ValidationError for s, or nil.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidProperty, err)
	}

	verr := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, e := range fieldErrs {
		verr.Fields[e.Field()] = message(e)
	}
	return verr
}

// NewProperty validates f and builds an unsaved Property (id 0).
func NewProperty(f Fields) (Property, error) {
	if err := validateStruct(&f); err != nil {
		return Property{}, err
	}
	return Property{
		ManagerName: f.ManagerName,
		Address:     f.Address,
		RoomsCount:  *f.RoomsCount,
		TotalArea:   *f.TotalArea,
		Price:       *f.Price,
	}, nil
}

// Validate checks every field rule on p.
func (p Property) Validate() error {
	return validateStruct(&p)
}
