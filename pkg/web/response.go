// Package web defines common components for the HTTP API.
package web

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Response holds the common response type for all APIs.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Error wraps err into a response body.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// Data wraps v into a response body.
func Data(v any) Response {
	return Response{Data: v}
}

// BindingError turns a request binding error into a readable message.
// Validation failures name the first offending field.
func BindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]

	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s field is required", fe.Field())
	case "currency":
		return fmt.Errorf("%s field has unsupported currency", fe.Field())
	case "timezone":
		return fmt.Errorf("%s field is not a valid time zone", fe.Field())
	case "power":
		return fmt.Errorf("%s field is not a known power", fe.Field())
	case "min":
		return fmt.Errorf("%s field must be at least %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Errorf("%s field must be greater than %s", fe.Field(), fe.Param())
	}

	return fmt.Errorf("%s field is invalid", fe.Field())
}
