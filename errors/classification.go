package errors

// ErrorClassification indicates whether an error should trigger a retry.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
//
// An unsupported template version is retryable: the generator may try once
// more against the fallback branch. Everything network related is retryable
// because running the command again once back online can succeed.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeUnsupportedVersion: ClassificationRetryable,
	CodeNetwork:            ClassificationRetryable,
	CodeUnreachable:        ClassificationRetryable,
	CodeTimeout:            ClassificationRetryable,

	CodeInvalidTemplate:    ClassificationPermanent,
	CodeNoSuchPath:         ClassificationPermanent,
	CodeRefNotFound:        ClassificationPermanent,
	CodeRepositoryNotFound: ClassificationPermanent,
	CodeCloneFailed:        ClassificationPermanent,
	CodeNotFound:           ClassificationPermanent,
	CodeAlreadyExists:      ClassificationPermanent,
	CodeConflict:           ClassificationPermanent,
	CodeUnauthorized:       ClassificationPermanent,
	CodeInvalidInput:       ClassificationPermanent,
	CodeInvalidConfig:      ClassificationPermanent,
	CodeExecutionFailed:    ClassificationPermanent,
	CodeInternal:           ClassificationPermanent,
	CodeUnknown:            ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
