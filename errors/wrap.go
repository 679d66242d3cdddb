package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with a code and message while preserving the original
// error. The wrapped error is accessible via Unwrap() and compatible with
// errors.Is and errors.As.
//
// The classification always follows the new code: wrapping changes what the
// failure means to the caller, so the retry decision moves with it.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := remote.Fetch(ctx); err != nil {
//	    return errors.Wrap(err, errors.CodeNetwork, "failed to fetch template")
//	}
func Wrap(err error, code ErrorCode, message string) PlatformError {
	if err == nil {
		return nil
	}

	return &platformError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
		cause:          err,
	}
}

// Wrapf wraps an error with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...any) PlatformError {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single
// operation. The context map is copied.
//
// Returns nil if err is nil.
//
// Example:
//
//	return errors.WrapWithContext(err, errors.CodeInvalidTemplate, "invalid template repository", map[string]any{
//	    "template": location,
//	})
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]any) PlatformError {
	if err == nil {
		return nil
	}

	return &platformError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
		context:        copyContext(ctx),
		cause:          err,
	}
}

// asPlatformError returns err as a PlatformError, converting plain errors to
// one with CodeUnknown.
func asPlatformError(err error) PlatformError {
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		return platformErr
	}
	return &platformError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}
