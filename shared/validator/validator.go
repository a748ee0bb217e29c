package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"reziro/shared/constant"
	"reziro/shared/failure"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

var (
	validate = newValidate()

	errTrailingData = errors.New("request body must hold a single JSON value")
)

// layouts are the custom tags checked by time.Parse; the parse also rejects
// impossible dates such as 2023-02-29.
var layouts = map[string]string{
	"isodate":  constant.DateOnlyFormat,
	"monthkey": constant.MonthKeyFormat,
}

func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	for tag, layout := range layouts {
		if err := v.RegisterValidation(tag, parses(layout)); err != nil {
			panic(err)
		}
	}

	return v
}

func parses(layout string) val.Func {
	return func(field val.FieldLevel) bool {
		value, ok := field.Field().Interface().(string)
		if !ok {
			return false
		}

		_, err := time.Parse(layout, value)

		return err == nil
	}
}

// jsonName reports fields under their JSON name; untagged fields keep the Go name.
func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// Validate decodes exactly one JSON value from r into data and validates it.
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	if decoder.More() {
		return failure.BadRequest(errTrailingData) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
