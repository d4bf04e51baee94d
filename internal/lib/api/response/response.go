package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status string            `json:"status"`
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

func OK() Response {
	return Response{
		Status: StatusOK,
	}
}

func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

// FieldError reports a single invalid field. The message doubles as the top-level error.
func FieldError(field, msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
		Fields: map[string]string{field: msg},
	}
}

func ValidationError(errs validator.ValidationErrors) Response {
	var errMsgs []string
	fields := make(map[string]string, len(errs))

	for _, err := range errs {
		var msg string

		switch err.ActualTag() {
		case "required":
			msg = fmt.Sprintf("field %s is a required field", err.Field())
		case "email":
			msg = fmt.Sprintf("field %s is not a valid email", err.Field())
		case "oneof":
			msg = fmt.Sprintf("field %s must be one of [%s]", err.Field(), err.Param())
		case "min", "gte":
			msg = fmt.Sprintf("field %s must be at least %s", err.Field(), err.Param())
		case "max", "lte":
			msg = fmt.Sprintf("field %s must be at most %s", err.Field(), err.Param())
		default:
			msg = fmt.Sprintf("field %s is not valid", err.Field())
		}

		errMsgs = append(errMsgs, msg)
		fields[err.Field()] = msg
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMsgs, ", "),
		Fields: fields,
	}
}
