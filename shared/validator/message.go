package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const messageSeparator = "; "

var messages = map[string]string{
	"required": "{field} is required",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"gt":       "{field} must be greater than {param}",
	"min":      "{field} must be at least {param}",
	"max":      "{field} must be at most {param}",
	"oneof":    "{field} must be one of {param}",
	"email":    "{field} must be a valid email address",
	"isodate":  "{field} must be a date formatted YYYY-MM-DD",
	"monthkey": "{field} must be a month formatted YYYY-MM",
	"dive":     "{field} has an invalid item",
}

// message renders every failed field, in struct order, using the JSON field
// names clients send.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			parts = append(parts, valErr.Error())

			continue
		}

		parts = append(parts, strings.NewReplacer(
			"{field}", fieldPath(valErr),
			"{param}", valErr.Param(),
		).Replace(template))
	}

	return strings.Join(parts, messageSeparator)
}

// fieldPath drops the root struct name, so nested fields read
// "customer.email" and slice items "selectedRoomCosts[0].qty".
func fieldPath(valErr val.FieldError) string {
	namespace := valErr.Namespace()
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}

	return valErr.Field()
}
