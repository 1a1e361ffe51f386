package handler

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"hr-payroll/internal/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report json names so messages match what the client sent.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// flexInt accepts both 3 and "3"; HTML selects post their values as strings.
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*n = flexInt(v)
	return nil
}

// parseBody decodes the JSON body into req and runs the struct validators.
func parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return apperror.Invalid("Invalid request data", err)
	}
	if err := validate.Struct(req); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return apperror.Invalid("Invalid request data", err)
	}

	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return apperror.Required(fe.Field())
	case "email":
		return apperror.Validation("Invalid email address")
	case "datetime":
		return apperror.Invalid(fmt.Sprintf("Invalid %s format, expected YYYY-MM-DD", fe.Field()), err)
	case "max":
		if fe.Kind() == reflect.String {
			return apperror.Validation(fmt.Sprintf("%s is too long", fe.Field()))
		}
	}
	return apperror.Validation(fmt.Sprintf("Invalid value for %s", fe.Field()))
}

func paramID(c *fiber.Ctx, key string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(key), 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.Invalid("Invalid "+key, err)
	}
	return uint(id), nil
}
