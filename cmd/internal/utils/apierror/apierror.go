package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is returned by services instead of a plain error so routes
// can serialize it directly: c.JSON(apierr.Code(), apierr).
type ErrorResponse interface {
	error
	Code() int
}

type simpleError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *simpleError) Code() int {
	return e.Status
}

func (e *simpleError) Error() string {
	return e.Message
}

func NewSimple(code int, message string) ErrorResponse {
	return &simpleError{Status: code, Message: message}
}

func NewMissingParamError(name string) ErrorResponse {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Missing required parameter: %s", name))
}

func NewInvalidParamTypeError(name, expected string) ErrorResponse {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Parameter %s must be of type %s", name, expected))
}

// FromValidationError flattens a validator.ValidationErrors into a 400
// naming the first offending field.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := verrs[0]
		return NewSimple(http.StatusBadRequest,
			fmt.Sprintf("Field validation failed on %s (rule: %s)", field.Field(), field.Tag()))
	}
	return MalformedBodyError
}

var (
	InternalServerError = NewSimple(http.StatusInternalServerError, "An internal server error occurred")
	NotFoundError       = NewSimple(http.StatusNotFound, "The requested resource was not found")
	MalformedBodyError  = NewSimple(http.StatusBadRequest, "Could not understand request body")

	InvalidAuthTokenError   = NewSimple(http.StatusUnauthorized, "Invalid or expired authorization token")
	NotLoggedInError        = NewSimple(http.StatusUnauthorized, "You must be logged in to access this page.")
	NotOwnerError           = NewSimple(http.StatusUnauthorized, "You must be the owner of a reservation to modify it.")
	NotAdminError           = NewSimple(http.StatusUnauthorized, "You must be an admin to access this resource.")
	InvalidCredentialsError = NewSimple(http.StatusUnauthorized, "Invalid username or password.")

	UserAlreadyExistsError  = NewSimple(http.StatusBadRequest, "User already registered. Please specify a different username.")
	EmailAlreadyExistsError = NewSimple(http.StatusBadRequest, "Email already registered. Please login or use a different email.")
)
