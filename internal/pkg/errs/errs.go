/*
Package errs provides custom error types and application-level error code constants.

This file defines the CustomError struct, which implements the standard Go error interface
and carries a business code, a diagnostic message, an HTTP status code for the status API,
and optionally the underlying cause.
*/
package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"roombot/internal/pkg/logx"
)

// CustomError is the custom error structure used throughout the application.
type CustomError struct {
	// Code is the business error code (see constants definition).
	Code int

	// Message is the human-readable error description.
	Message string

	// Status is the HTTP status code used when the error is reported by the status API.
	Status int

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the standard Go error interface.
func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("error code %d: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("error code %d: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause so errors.Is and errors.As see through CustomError.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewError constructs a new *CustomError based on a predefined error code.
// The optional details are printf-style arguments for the message template.
// If an unknown code is provided, it returns ErrUnknown.
func NewError(code int, details ...any) *CustomError {
	templateErr, ok := errorMap[code]

	if !ok {
		logx.Error(
			fmt.Errorf("attempted to create an error with an unknown code in errorMap"),
			"Unknown error code requested",
			"requested_code", code,
		)

		unknownErr := errorMap[ErrUnknown]
		return &CustomError{
			Code:    unknownErr.Code,
			Message: unknownErr.Message,
			Status:  unknownErr.Status,
		}
	}

	customErr := templateErr

	if customErr.Status == 0 {
		customErr.Status = http.StatusInternalServerError
	}

	if len(details) > 0 {
		if strings.Contains(customErr.Message, "%") {
			customErr.Message = fmt.Sprintf(customErr.Message, details...)
		} else {
			logx.Warn(
				"Details provided for error, but message template has no formatting placeholders. Details ignored.",
				"code", code,
			)
		}
	}

	return &customErr
}

// Wrap builds a *CustomError for code and records err as its cause.
func Wrap(code int, err error, details ...any) *CustomError {
	customErr := NewError(code, details...)
	customErr.Err = err
	return customErr
}

// HasCode reports whether any error in err's chain is a *CustomError with the given code.
func HasCode(err error, code int) bool {
	var customErr *CustomError
	for err != nil {
		if !errors.As(err, &customErr) {
			return false
		}
		if customErr.Code == code {
			return true
		}
		err = customErr.Err
	}
	return false
}
