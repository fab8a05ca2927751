// File: codes.go
// Title: Error Codes
// Description: Machine-readable error codes used across the client to
//              classify failures from the backend, the transport, and
//              local validation.

package error

// Code is a machine-readable error classification
type Code string

const (
	// CodeUnknown is the default code for unclassified errors
	CodeUnknown Code = "UNKNOWN"

	// CodeInvalidInput indicates a malformed value from the user or caller
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeValidationFailed indicates a value that failed a domain rule
	CodeValidationFailed Code = "VALIDATION_FAILED"

	// CodeNotFound indicates a missing task or resource
	CodeNotFound Code = "NOT_FOUND"

	// CodeTransport indicates a network-level failure reaching the backend
	CodeTransport Code = "TRANSPORT"

	// CodeBackendError indicates the backend rejected or failed the request
	CodeBackendError Code = "BACKEND_ERROR"

	// CodeServiceUnavailable indicates the backend is unreachable or down
	CodeServiceUnavailable Code = "SERVICE_UNAVAILABLE"

	// CodeEnvironmentError indicates a local environment problem
	// (unwritable settings dir, missing journal database, ...)
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsValid returns true if the code is one of the defined constants
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInvalidInput, CodeValidationFailed, CodeNotFound,
		CodeTransport, CodeBackendError, CodeServiceUnavailable, CodeEnvironmentError:
		return true
	}
	return false
}
