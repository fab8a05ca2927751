// File: error.go
// Title: Core Error Implementation
// Description: Structured errors with codes, severity, and contextual
//              details. Keeps compatibility with the standard error
//              interface while carrying the server-supplied message the
//              UI prefers to show.

package error

import (
	"fmt"
	"strings"
	"time"
)

// DetailServerMessage is the detail key under which the api client stores
// the human-readable message returned by the backend.
const DetailServerMessage = "server_message"

// Error represents a structured error with code, severity and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time
	details   map[string]interface{}
	operation string
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with additional context. Wrapping a nil
// error returns nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Preserve code, severity and details of an already-structured error.
	if structured, ok := err.(*Error); ok {
		wrapped := &Error{
			message:   message,
			cause:     structured,
			code:      structured.code,
			severity:  structured.severity,
			timestamp: time.Now(),
			details:   make(map[string]interface{}),
			operation: structured.operation,
		}
		for k, v := range structured.details {
			wrapped.details[k] = v
		}
		return wrapped
	}

	return &Error{
		message:   message,
		cause:     err,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium { // only auto-set if not explicitly set
		e.severity = severityFromCode(code)
	}
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithOperation tags the error with the operation that produced it
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithServerMessage records the human-readable message the backend sent
func (e *Error) WithServerMessage(msg string) *Error {
	if strings.TrimSpace(msg) != "" {
		e.details[DetailServerMessage] = msg
	}
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Operation returns the operation tag
func (e *Error) Operation() string {
	return e.operation
}

// Details returns the details map
func (e *Error) Details() map[string]interface{} {
	return e.details
}

// ServerMessage returns the backend-supplied message, if any
func (e *Error) ServerMessage() string {
	if msg, ok := e.details[DetailServerMessage].(string); ok {
		return msg
	}
	return ""
}

// UserMessage resolves the string to show the technician for err:
// the server-supplied message when present, else the transport-level
// message, else the given static default.
func UserMessage(err error, defaultMsg string) string {
	if err == nil {
		return defaultMsg
	}

	if structured, ok := err.(*Error); ok {
		if msg := structured.ServerMessage(); strings.TrimSpace(msg) != "" {
			return msg
		}
	}

	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return defaultMsg
}
