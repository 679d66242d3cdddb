package git

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-billy/v5"
	gogit "github.com/go-git/go-git/v5"
)

// RemoteOperations defines the interface for Git remote network operations.
// This interface allows for testing by enabling mock implementations that
// don't require actual network access.
type RemoteOperations interface {
	// Clone clones url into fs, which is scoped to the destination directory.
	Clone(ctx context.Context, fs billy.Filesystem, url string) (*Repository, error)

	// Fetch downloads objects and refs from the remote repository.
	Fetch(ctx context.Context, repo *Repository, opts FetchOptions) error
}

// defaultRemoteOps uses go-git's transports.
type defaultRemoteOps struct{}

func (d *defaultRemoteOps) Clone(ctx context.Context, fs billy.Filesystem, url string) (*Repository, error) {
	storage, worktree, err := storageFor(fs, false)
	if err != nil {
		return nil, err
	}

	repo, err := gogit.CloneContext(ctx, storage, worktree, &gogit.CloneOptions{
		URL:        url,
		RemoteName: DefaultRemote,
	})
	if err != nil {
		return nil, wrapError(err, fmt.Sprintf("failed to clone %s", url))
	}

	return &Repository{repo: repo, fs: fs}, nil
}

func (d *defaultRemoteOps) Fetch(ctx context.Context, repo *Repository, opts FetchOptions) error {
	remoteName := opts.RemoteName
	if remoteName == "" {
		remoteName = DefaultRemote
	}

	err := repo.repo.FetchContext(ctx, &gogit.FetchOptions{
		RemoteName: remoteName,
		Force:      true,
	})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return wrapError(err, fmt.Sprintf("failed to fetch from %s", remoteName))
	}

	return nil
}

// Fetch downloads objects and refs from a remote, updating remote-tracking
// branches without touching the working tree.
//
// Example:
//
//	err := repo.Fetch(ctx, git.FetchOptions{RemoteName: "origin"})
func (r *Repository) Fetch(ctx context.Context, opts FetchOptions) error {
	ops := r.remoteOps
	if ops == nil {
		ops = &defaultRemoteOps{}
	}
	//nolint:wrapcheck // errors from remoteOps are already wrapped
	return ops.Fetch(ctx, r, opts)
}

// Remote returns the configured remote called name.
//
// Returns CodeNotFound if no such remote is configured.
func (r *Repository) Remote(name string) (*Remote, error) {
	remote, err := r.repo.Remote(name)
	if err != nil {
		return nil, wrapError(err, fmt.Sprintf("failed to get remote %q", name))
	}

	cfg := remote.Config()
	return &Remote{Name: cfg.Name, URLs: cfg.URLs, repo: r}, nil
}

// Fetch updates the remote-tracking refs of this remote.
func (rm *Remote) Fetch(ctx context.Context) error {
	return rm.repo.Fetch(ctx, FetchOptions{RemoteName: rm.Name})
}
