package cache

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	platformerrors "github.com/yngvem/briefcase/errors"
	"github.com/yngvem/briefcase/git"
)

// New creates a Cache. Without WithDir the directory comes from DefaultDir.
//
// Example:
//
//	c, err := cache.New(cache.WithLogger(logging.GetLogger("cache")))
func New(opts ...Option) (*Cache, error) {
	options := &cacheOptions{}
	for _, opt := range opts {
		opt(options)
	}

	dir := options.dir
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, err
		}
	}

	opener := options.opener
	if opener == nil {
		var gitOpts []git.RepositoryOption
		if options.fs != nil {
			gitOpts = append(gitOpts, git.WithFilesystem(options.fs))
		}
		if options.remoteOps != nil {
			gitOpts = append(gitOpts, git.WithRemoteOperations(options.remoteOps))
		}
		opener = NewGitOpener(gitOpts...)
	}

	c := &Cache{
		dir:    dir,
		opener: opener,
		stdout: options.stdout,
		logger: zerolog.Nop(),
	}
	if c.stdout == nil {
		c.stdout = os.Stdout
	}
	if options.logger != nil {
		c.logger = *options.logger
	}

	return c, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// EntryPath returns where a clone of location lives in the cache.
func (c *Cache) EntryPath(location string) string {
	return filepath.Join(c.dir, RepoName(ExpandAbbreviation(location)))
}

// Resolve maps a template location to what the render engine should use.
//
// Local paths are returned unchanged without touching the cache. For remote
// locations the cache entry is opened: a missing entry is a miss and the
// original location is returned; an existing entry is a hit and its path is
// returned with the opened repository. Other open failures are returned.
func (c *Cache) Resolve(location string) (Resolution, error) {
	if !IsRepoURL(ExpandAbbreviation(location)) {
		c.logger.Debug().Str("template", location).Msg("Using local template")
		return Resolution{Location: location}, nil
	}

	path := c.EntryPath(location)
	repo, err := c.opener.Open(path)
	if err != nil {
		if platformerrors.HasCode(err, platformerrors.CodeNoSuchPath) {
			c.logger.Debug().Str("template", location).Str("path", path).Msg("Template cache miss")
			return Resolution{Location: location}, nil
		}
		return Resolution{}, platformerrors.WrapWithContext(err, platformerrors.GetCode(err),
			"failed to open cached template", map[string]any{"template": location, "path": path})
	}

	c.logger.Debug().Str("template", location).Str("path", path).Msg("Template cache hit")
	return Resolution{Location: path, Repository: repo, Cached: true}, nil
}
