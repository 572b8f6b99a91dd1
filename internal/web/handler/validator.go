package handler

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// XValidator validates request payloads and reports failures by JSON field name.
type XValidator struct {
	validator *validator.Validate
}

// Validator is shared by all handlers, validator.Validate caches struct metadata.
var Validator = NewXValidator()

// NewXValidator creates a validator reporting JSON field names.
func NewXValidator() *XValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0] //nolint:mnd
		if name == "-" {
			return ""
		}

		return name
	})

	return &XValidator{validator: v}
}

// Validate performs validation on the provided data and returns the failed fields.
func (x *XValidator) Validate(data any) []FieldError {
	var validationErrors []FieldError

	err := x.validator.Struct(data)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return []FieldError{{Field: "", Tag: "invalid", Value: nil}}
	}

	for _, e := range errs {
		validationErrors = append(validationErrors, FieldError{
			Field: e.Field(),
			Tag:   e.Tag(),
			Value: e.Value(),
		})
	}

	return validationErrors
}

// Bind decodes the JSON body into v and validates it. An empty body counts
// as an empty object.
func Bind(c *fiber.Ctx, v any) error {
	body := c.Body()
	if len(body) == 0 {
		body = []byte("{}")
	}

	if err := c.App().Config().JSONDecoder(body, v); err != nil {
		return BadRequest(MsgInvalidBody)
	}

	if fields := Validator.Validate(v); len(fields) > 0 {
		return ValidationError(fields)
	}

	return nil
}

// ParseID reads the :id path parameter. Ids must fit a signed 64 bit
// column, larger values are rejected like any other malformed id.
func ParseID(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 63) //nolint:mnd
	if err != nil || id == 0 {
		return 0, BadRequest(MsgInvalidID)
	}

	return id, nil
}

// QueryFlag reports whether the query parameter is exactly "true".
func QueryFlag(c *fiber.Ctx, name string) bool {
	return c.Query(name) == "true"
}
