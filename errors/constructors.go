package errors

import "fmt"

// New creates a new PlatformError with the given code and message.
// The error classification is determined by the error code.
//
// Example:
//
//	err := errors.New(errors.CodeRefNotFound, "remote ref not found")
func New(code ErrorCode, message string) PlatformError {
	return &platformError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a new PlatformError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeUnsupportedVersion, "template has no branch %q", ref)
func Newf(code ErrorCode, format string, args ...any) PlatformError {
	return New(code, fmt.Sprintf(format, args...))
}
