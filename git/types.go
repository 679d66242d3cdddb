package git

import (
	"github.com/go-git/go-billy/v5"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// DefaultRemote is the remote name used when none is given.
const DefaultRemote = "origin"

// Repository wraps a go-git repository with platform conventions.
// It stores both the underlying go-git repository and a billy filesystem
// for all I/O operations.
type Repository struct {
	path      string
	repo      *gogit.Repository
	fs        billy.Filesystem
	remoteOps RemoteOperations
}

// Remote is a configured remote of a Repository.
type Remote struct {
	Name string
	URLs []string

	repo *Repository
}

// Ref is a remote-tracking reference resolved to a commit.
type Ref struct {
	// Name is the short name as requested, e.g. "v0.3.12".
	Name string

	// Reference is the full name, e.g. "refs/remotes/origin/v0.3.12".
	Reference plumbing.ReferenceName

	Hash plumbing.Hash

	repo *Repository
}

// FetchOptions configures fetch operations.
type FetchOptions struct {
	RemoteName string // Default: "origin"
}

// CommitOptions configures commit creation.
type CommitOptions struct {
	Author     string
	Email      string
	Message    string
	AllowEmpty bool
}

// RepositoryOption configures repository creation operations (Init, Open, Clone).
type RepositoryOption func(*repositoryOptions)

type repositoryOptions struct {
	fs        billy.Filesystem
	remoteOps RemoteOperations
	bare      bool
}

func applyOptions(opts []RepositoryOption) *repositoryOptions {
	options := &repositoryOptions{remoteOps: &defaultRemoteOps{}}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithFilesystem sets the billy filesystem the repository path is resolved
// against. If not provided, the OS filesystem is used.
//
// Example:
//
//	repo, err := git.Init("/repo", git.WithFilesystem(memfs.New()))
func WithFilesystem(fs billy.Filesystem) RepositoryOption {
	return func(opts *repositoryOptions) {
		opts.fs = fs
	}
}

// WithRemoteOperations sets the RemoteOperations implementation used for
// network operations (Clone, Fetch). Defaults to go-git's transports; see
// NewCLIRemoteOperations for the git CLI alternative.
func WithRemoteOperations(ops RemoteOperations) RepositoryOption {
	return func(opts *repositoryOptions) {
		opts.remoteOps = ops
	}
}

// WithBare creates a bare repository (no working tree).
// Only applicable to Init.
func WithBare() RepositoryOption {
	return func(opts *repositoryOptions) {
		opts.bare = true
	}
}
