// Package validators checks decoded request inputs against their struct tags
// and reports every violated field at once.
package validators

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/catalog-api/internal/httperr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		n, err := strconv.ParseFloat(fl.Field().String(), 64)
		return err == nil && !math.IsNaN(n) && !math.IsInf(n, 0)
	})

	return v
}

// Struct returns nil, an httperr validation error listing every violation,
// or the validator's own error when s is not a struct.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	violations := make([]httperr.FieldViolation, 0, len(ve))
	for _, fe := range ve {
		violations = append(violations, httperr.FieldViolation{
			Field:   fe.Field(),
			Message: fieldError(fe),
		})
	}
	return httperr.ErrValidation(violations)
}

func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " must not be blank"
	case "email":
		return field + " must be a valid email"
	case "decimal":
		return field + " must be a number"
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
