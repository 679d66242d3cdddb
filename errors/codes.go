// Package errors provides the error taxonomy shared by the template pipeline.
// It extends Go's standard error handling with structured error codes, retry
// classification and context preservation.
package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural log output.
type ErrorCode string

const (
	// Template errors surfaced to callers of the generator.

	// CodeInvalidTemplate indicates the template location does not resolve to
	// a valid template repository.
	CodeInvalidTemplate ErrorCode = "INVALID_TEMPLATE_REPOSITORY"

	// CodeUnsupportedVersion indicates the template repository exists but has
	// no ref matching the requested checkout reference.
	CodeUnsupportedVersion ErrorCode = "TEMPLATE_UNSUPPORTED_VERSION"

	// CodeNetwork indicates a required network operation could not complete.
	CodeNetwork ErrorCode = "NETWORK_ERROR"

	// Version control errors.

	// CodeNoSuchPath indicates there is nothing on disk at a repository path.
	CodeNoSuchPath ErrorCode = "NO_SUCH_PATH"

	// CodeRefNotFound indicates a branch, tag or remote ref does not exist.
	CodeRefNotFound ErrorCode = "REF_NOT_FOUND"

	// CodeUnreachable indicates the remote could not be contacted at all
	// (git exits with status 128 in this case).
	CodeUnreachable ErrorCode = "REMOTE_UNREACHABLE"

	// Render engine errors.

	// CodeRepositoryNotFound indicates the render engine could not find a
	// template repository at the given location.
	CodeRepositoryNotFound ErrorCode = "REPOSITORY_NOT_FOUND"

	// CodeCloneFailed indicates the render engine could not clone or check out
	// the requested ref.
	CodeCloneFailed ErrorCode = "REPOSITORY_CLONE_FAILED"

	// Resource errors.

	// CodeNotFound indicates a requested resource does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates a resource already exists and cannot be created again.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeConflict indicates a resource state conflict that prevents the operation.
	CodeConflict ErrorCode = "CONFLICT"

	// CodeUnauthorized indicates the request lacks valid authentication credentials.
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Infrastructure errors.

	// CodeTimeout indicates an operation exceeded its time limit.
	CodeTimeout ErrorCode = "TIMEOUT"

	// CodeExecutionFailed indicates an external command failed.
	CodeExecutionFailed ErrorCode = "EXECUTION_FAILED"

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
