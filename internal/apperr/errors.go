package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error is an error that maps onto an HTTP response.
type Error struct {
	Status  int         `json:"-"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

// New returns an Error with the given status, code and message.
func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// WithDetails returns a copy of e carrying details.
func (e *Error) WithDetails(details interface{}) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

var (
	ErrBadRequest   = New(http.StatusBadRequest, "BAD_REQUEST", "The request is invalid.")
	ErrInvalidID    = New(http.StatusBadRequest, "INVALID_ID", "The id is not a valid object id.")
	ErrUnauthorized = New(http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid access token.")
	ErrForbidden    = New(http.StatusForbidden, "FORBIDDEN", "You do not have permission to perform this action.")
	ErrNotFound     = New(http.StatusNotFound, "NOT_FOUND", "The requested resource could not be found.")
	ErrInternal     = New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "An unexpected error occurred on the server.")
	ErrUnavailable  = New(http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "The service is not configured.")
)

// As extracts an *Error from err.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Validation converts validator output into a 422 error.
func Validation(err error) *Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ErrBadRequest.WithDetails(err.Error())
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			details[field] = fmt.Sprintf("The %s field is required.", field)
		case "email":
			details[field] = fmt.Sprintf("The %s field must be a valid email address.", field)
		case "oneof":
			details[field] = fmt.Sprintf("The %s field must be one of: %s.", field, fe.Param())
		case "gt":
			details[field] = fmt.Sprintf("The %s field must be greater than %s.", field, fe.Param())
		case "gte":
			details[field] = fmt.Sprintf("The %s field must be greater than or equal to %s.", field, fe.Param())
		default:
			details[field] = fmt.Sprintf("Validation failed on the '%s' tag.", fe.Tag())
		}
	}
	return &Error{
		Status:  http.StatusUnprocessableEntity,
		Code:    "VALIDATION_ERROR",
		Message: "Input validation failed.",
		Details: details,
	}
}
