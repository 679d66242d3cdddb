package git

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	platformerrors "github.com/yngvem/briefcase/errors"
)

// wrapError wraps an error with context, classifying it as a platform error type.
// It preserves the original error chain for errors.Is/errors.As compatibility.
// If err is nil, returns nil.
func wrapError(err error, context string) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", context, classifyError(err))
}

// unreachableMarkers are substrings go-git leaves in transport errors after
// flattening the underlying net error into text.
var unreachableMarkers = []string{
	"no such host",
	"connection refused",
	"network is unreachable",
	"no route to host",
	"i/o timeout",
	"dial tcp",
	"could not resolve host",
}

// isUnreachable reports whether err means the remote could not be contacted.
func isUnreachable(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range unreachableMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// classifyError maps go-git errors to platform error types.
// Unknown errors are passed through unchanged to preserve their original
// information.
//
//nolint:gocyclo,cyclop // each case is a simple mapping
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return platformerrors.Wrap(err, platformerrors.CodeTimeout, "operation timed out")
	}

	// Missing paths
	if errors.Is(err, os.ErrNotExist) {
		return platformerrors.New(platformerrors.CodeNoSuchPath, "path does not exist")
	}

	// Repository lookups
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return platformerrors.New(platformerrors.CodeNotFound, "repository does not exist")
	}
	if errors.Is(err, transport.ErrRepositoryNotFound) {
		return platformerrors.New(platformerrors.CodeNotFound, "repository not found")
	}
	if errors.Is(err, gogit.ErrRepositoryAlreadyExists) {
		return platformerrors.New(platformerrors.CodeAlreadyExists, "repository already exists")
	}

	// References
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return platformerrors.New(platformerrors.CodeRefNotFound, "reference not found")
	}
	if errors.Is(err, gogit.ErrBranchExists) {
		return platformerrors.New(platformerrors.CodeAlreadyExists, "branch already exists")
	}

	// Remotes
	if errors.Is(err, gogit.ErrRemoteNotFound) {
		return platformerrors.New(platformerrors.CodeNotFound, "remote not found")
	}
	if errors.Is(err, gogit.ErrRemoteExists) {
		return platformerrors.New(platformerrors.CodeAlreadyExists, "remote already exists")
	}
	if errors.Is(err, transport.ErrEmptyRemoteRepository) {
		return platformerrors.New(platformerrors.CodeNotFound, "remote repository is empty")
	}

	// Authentication
	if errors.Is(err, transport.ErrAuthenticationRequired) {
		return platformerrors.New(platformerrors.CodeUnauthorized, "authentication required")
	}
	if errors.Is(err, transport.ErrAuthorizationFailed) {
		return platformerrors.New(platformerrors.CodeUnauthorized, "authorization failed")
	}

	// Worktree state
	if errors.Is(err, gogit.ErrWorktreeNotClean) {
		return platformerrors.New(platformerrors.CodeConflict, "worktree is not clean")
	}
	if errors.Is(err, gogit.ErrEmptyCommit) {
		return platformerrors.New(platformerrors.CodeConflict, "cannot create empty commit: working tree is clean")
	}

	// Invalid input
	if errors.Is(err, gogit.ErrMissingURL) {
		return platformerrors.New(platformerrors.CodeInvalidInput, "URL is required")
	}
	if errors.Is(err, gogit.ErrMissingAuthor) {
		return platformerrors.New(platformerrors.CodeInvalidInput, "author is required")
	}

	// Transport failures that never reached the remote
	if isUnreachable(err) {
		return platformerrors.Wrap(err, platformerrors.CodeUnreachable, "remote is unreachable")
	}

	return err
}
