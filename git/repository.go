package git

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/storage/filesystem"
	platformerrors "github.com/yngvem/briefcase/errors"
)

// scope returns a filesystem rooted at path. Without a base filesystem the
// OS filesystem rooted at path is used.
func scope(base billy.Filesystem, path string) (billy.Filesystem, error) {
	if base == nil {
		return osfs.New(path), nil
	}
	fs, err := base.Chroot(path)
	if err != nil {
		return nil, wrapError(err, "failed to scope filesystem to path")
	}
	return fs, nil
}

// exists reports whether path is present, on base or on the OS filesystem.
func exists(base billy.Filesystem, path string) (bool, error) {
	var err error
	if base == nil {
		_, err = os.Stat(path)
	} else {
		_, err = base.Stat(path)
	}
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, wrapError(err, "failed to stat repository path")
	}
}

// storageFor returns go-git storage plus the worktree filesystem (nil for
// bare repositories) for a filesystem scoped to a repository root.
func storageFor(fs billy.Filesystem, bare bool) (*filesystem.Storage, billy.Filesystem, error) {
	if bare {
		return filesystem.NewStorage(fs, cache.NewObjectLRUDefault()), nil, nil
	}
	dotGit, err := fs.Chroot(gogit.GitDirName)
	if err != nil {
		return nil, nil, wrapError(err, "failed to scope filesystem to .git")
	}
	return filesystem.NewStorage(dotGit, cache.NewObjectLRUDefault()), fs, nil
}

// Init creates a new Git repository at the specified path.
//
// Returns CodeAlreadyExists if a repository already exists at the path.
//
// Examples:
//
//	repo, err := git.Init("/path/to/repo")
//	repo, err := git.Init("/path/to/repo.git", git.WithBare())
//	repo, err := git.Init("/repo", git.WithFilesystem(memfs.New()))
func Init(path string, opts ...RepositoryOption) (*Repository, error) {
	options := applyOptions(opts)

	if options.fs != nil {
		if err := options.fs.MkdirAll(path, 0o755); err != nil {
			return nil, wrapError(err, "failed to create repository directory")
		}
	}

	fs, err := scope(options.fs, path)
	if err != nil {
		return nil, err
	}

	storage, worktree, err := storageFor(fs, options.bare)
	if err != nil {
		return nil, err
	}

	repo, err := gogit.Init(storage, worktree)
	if err != nil {
		return nil, wrapError(err, "failed to initialize repository")
	}

	return &Repository{
		path:      path,
		repo:      repo,
		fs:        fs,
		remoteOps: options.remoteOps,
	}, nil
}

// Open opens an existing Git repository at the specified path.
//
// Returns CodeNoSuchPath when nothing exists at path and CodeNotFound when
// path exists but holds no repository.
//
// Examples:
//
//	repo, err := git.Open("/home/me/.cookiecutters/briefcase-macOS-app-template")
//	repo, err := git.Open("/repo", git.WithFilesystem(fs))
func Open(path string, opts ...RepositoryOption) (*Repository, error) {
	options := applyOptions(opts)

	ok, err := exists(options.fs, path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, platformerrors.WithContext(
			platformerrors.Newf(platformerrors.CodeNoSuchPath, "no repository at %s", path),
			"path", path,
		)
	}

	fs, err := scope(options.fs, path)
	if err != nil {
		return nil, err
	}

	// A .git directory means a standard repository; otherwise try bare.
	stat, statErr := fs.Stat(gogit.GitDirName)
	bare := statErr != nil || !stat.IsDir()

	storage, worktree, err := storageFor(fs, bare)
	if err != nil {
		return nil, err
	}

	repo, err := gogit.Open(storage, worktree)
	if err != nil {
		return nil, wrapError(err, fmt.Sprintf("failed to open repository at %s", path))
	}

	return &Repository{
		path:      path,
		repo:      repo,
		fs:        fs,
		remoteOps: options.remoteOps,
	}, nil
}

// Clone clones url into path and configures it as the origin remote.
//
// Examples:
//
//	repo, err := git.Clone(ctx, "https://github.com/beeware/briefcase-template", "/tmp/template")
//	repo, err := git.Clone(ctx, url, "/cache/template",
//	    git.WithFilesystem(memfs.New()),
//	    git.WithRemoteOperations(fakeOps))
func Clone(ctx context.Context, url, path string, opts ...RepositoryOption) (*Repository, error) {
	options := applyOptions(opts)

	if options.fs != nil {
		if err := options.fs.MkdirAll(path, 0o755); err != nil {
			return nil, wrapError(err, "failed to create clone directory")
		}
	}

	fs, err := scope(options.fs, path)
	if err != nil {
		return nil, err
	}

	repo, err := options.remoteOps.Clone(ctx, fs, url)
	if err != nil {
		//nolint:wrapcheck // errors from remoteOps are already wrapped
		return nil, err
	}
	repo.path = path
	repo.remoteOps = options.remoteOps
	return repo, nil
}

// Path returns the path the repository was opened at.
func (r *Repository) Path() string {
	return r.path
}

// Filesystem returns the billy.Filesystem scoped to the working tree (or to
// the repository directory for bare repositories).
func (r *Repository) Filesystem() billy.Filesystem {
	return r.fs
}
