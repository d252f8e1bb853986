/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
diagnostics in logs and in status API responses.
*/
package errs

import "net/http"

// errorMap stores the CustomError template for every application error code.
var errorMap = map[int]CustomError{
	// 1xxx: Status API Request Errors
	ErrInvalidParams: {Code: ErrInvalidParams, Message: "Invalid request parameters.", Status: http.StatusBadRequest},
	ErrNotFound:      {Code: ErrNotFound, Message: "Resource not found: %s.", Status: http.StatusNotFound},
	ErrRateLimited:   {Code: ErrRateLimited, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Transport and Handshake Errors
	ErrTransport: {Code: ErrTransport, Message: "Transport failure during %s."},
	ErrMissingCredentialField: {
		Code:    ErrMissingCredentialField,
		Message: "Unable to log in: %s missing from the server response. Check the bot's registered name and password.",
	},
	ErrConnectionRejected: {
		Code: ErrConnectionRejected,
		Message: "Unable to access the chat: check the room id and make sure the bot power has been assigned. " +
			"If both are correct, the connect packet attributes might be outdated.",
	},
	ErrMalformedRecord:  {Code: ErrMalformedRecord, Message: "Malformed record: %s."},
	ErrUnexpectedRecord: {Code: ErrUnexpectedRecord, Message: "Record %s is missing attribute %s."},

	// 3xxx: Command Errors
	ErrCommandSyntax: {Code: ErrCommandSyntax, Message: "Invalid syntax: use %s"},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong.", Status: http.StatusInternalServerError},
}
