package failure

import (
	"errors"
	"net/http"
)

const internalMessage = "internal server error"

// Failure carries the HTTP status an error answers with. The cause stays
// reachable through errors.Is/As but is never serialized.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

func (e *Failure) Error() string {
	return e.Message
}

func (e *Failure) Unwrap() error {
	return e.cause
}

// New builds a failure without a cause.
func New(code int, message string) error {
	return &Failure{Code: code, Message: message}
}

// Wrap answers with code and err's message. A nil err stays nil.
func Wrap(code int, err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: code, Message: err.Error(), cause: err}
}

func BadRequest(err error) error {
	return Wrap(http.StatusBadRequest, err)
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

// InternalError hides err from the client; callers log it first.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusInternalServerError, Message: internalMessage, cause: err}
}

// GetCode returns the status of the outermost Failure in err's chain, 500
// for anything else.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
