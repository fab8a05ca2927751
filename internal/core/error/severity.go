// File: severity.go
// Title: Error Severity
// Description: Severity levels attached to errors, used to pick log levels
//              and decide how prominently a failure is surfaced in the UI.

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core
	// functionality (invalid input, cosmetic issues)
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but
	// degrades gracefully (a failed save the user can retry)
	SeverityMedium

	// SeverityHigh indicates a serious error that blocks the main flow
	// (task cannot be loaded)
	SeverityHigh
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// severityFromCode picks a default severity for a code when the caller
// didn't set one explicitly.
func severityFromCode(code Code) Severity {
	switch code {
	case CodeServiceUnavailable, CodeNotFound:
		return SeverityHigh
	case CodeTransport, CodeBackendError, CodeEnvironmentError:
		return SeverityMedium
	case CodeInvalidInput, CodeValidationFailed:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
