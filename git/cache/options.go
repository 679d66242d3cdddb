package cache

import (
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"
	"github.com/yngvem/briefcase/git"
)

type cacheOptions struct {
	dir       string
	opener    Opener
	fs        billy.Filesystem
	remoteOps git.RemoteOperations
	stdout    io.Writer
	logger    *zerolog.Logger
}

// WithDir sets the cache directory. Defaults to DefaultDir().
//
// Example:
//
//	c, err := cache.New(cache.WithDir("/var/cache/templates"))
func WithDir(dir string) Option {
	return func(opts *cacheOptions) {
		opts.dir = dir
	}
}

// WithOpener replaces the go-git backed Opener. Tests use it to observe
// the calls the cache makes.
func WithOpener(opener Opener) Option {
	return func(opts *cacheOptions) {
		opts.opener = opener
	}
}

// WithFilesystem sets the filesystem the default Opener reads entries from.
// Defaults to the OS filesystem.
func WithFilesystem(fs billy.Filesystem) Option {
	return func(opts *cacheOptions) {
		opts.fs = fs
	}
}

// WithRemoteOperations sets how the default Opener fetches, for example
// git.NewCLIRemoteOperations. Defaults to go-git's transports.
func WithRemoteOperations(ops git.RemoteOperations) Option {
	return func(opts *cacheOptions) {
		opts.remoteOps = ops
	}
}

// WithStdout sets where user-facing warnings are printed. Defaults to
// os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(opts *cacheOptions) {
		opts.stdout = w
	}
}

// WithLogger sets the logger. Defaults to a disabled logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(opts *cacheOptions) {
		opts.logger = &logger
	}
}
