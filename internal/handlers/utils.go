package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	apierrors "expense-api/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// parseExpenseID accepts only unsigned decimal ids; anything else cannot name a stored expense
func parseExpenseID(c echo.Context) (int64, bool) {
	raw := c.Param("id")
	if raw == "" {
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// bindErrorCode picks the response for a body that could not be decoded.
// A well-formed body carrying a value of the wrong type is a field format
// error; anything else is a malformed body.
func bindErrorCode(err error) (apierrors.ErrorCode, []string) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apierrors.ValidationInvalidFormat, []string{fmt.Sprintf("%s: Expected a %s.", typeErr.Field, jsonKind(typeErr.Type))}
	}
	return apierrors.ValidationMalformedBody, []string{"Request body must be a valid JSON object."}
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == decimalType {
		return "number"
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64, reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	default:
		return "value"
	}
}
