/*
Package errs provides custom error types and application-level error code constants.

These error codes classify failures of the session protocol engine, the command
dispatcher and the read-only status API so that callers can decide how to react.
*/
package errs

// 1xxx: Status API Request Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrNotFound indicates that the requested resource (e.g., a roster entry) does not exist.
	ErrNotFound = 1002

	// ErrRateLimited indicates that the caller exceeded the status API request rate.
	ErrRateLimited = 1003
)

// 2xxx: Transport and Handshake Errors
const (
	// ErrTransport indicates a socket dial, read or write failure. It is fatal for the session.
	ErrTransport = 2001

	// ErrMissingCredentialField indicates that login or room data lacked a key required by the connect packet.
	ErrMissingCredentialField = 2002

	// ErrConnectionRejected indicates that the server answered the connect packet with a failure marker.
	ErrConnectionRejected = 2003

	// ErrMalformedRecord indicates that a received record could not be parsed.
	ErrMalformedRecord = 2004

	// ErrUnexpectedRecord indicates that a record lacked an attribute needed to handle it.
	ErrUnexpectedRecord = 2005
)

// 3xxx: Command Errors
const (
	// ErrCommandSyntax indicates that a chat command failed its shape or bound checks.
	ErrCommandSyntax = 3001
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified internal error.
	ErrUnknown = 5000
)
