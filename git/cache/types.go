package cache

import (
	"context"
	"io"

	"github.com/rs/zerolog"
)

// Opener opens cached repositories.
type Opener interface {
	// Open opens the repository at path. It fails with CodeNoSuchPath when
	// nothing exists there.
	Open(path string) (Repository, error)
}

// Repository is a cached template clone.
type Repository interface {
	// Remote returns the named remote.
	Remote(name string) (Remote, error)
}

// Remote is a remote of a cached clone.
type Remote interface {
	// Fetch refreshes the remote-tracking refs. Failures to contact the
	// remote carry CodeUnreachable.
	Fetch(ctx context.Context) error

	// Ref resolves a remote branch, failing with CodeRefNotFound.
	Ref(name string) (Ref, error)
}

// Ref is a remote branch that can be checked out.
type Ref interface {
	// Checkout makes the ref's tree the working tree.
	Checkout() error
}

// Cache locates and refreshes template clones made by the render engine.
// It never creates entries itself; the render engine clones on first use.
//
// Concurrent use of one cache directory by several processes is not
// coordinated.
type Cache struct {
	dir    string
	opener Opener
	stdout io.Writer
	logger zerolog.Logger
}

// Resolution is the outcome of resolving a template location against the
// cache.
type Resolution struct {
	// Location is what the render engine should be given: the cache path on
	// a hit, otherwise the original location.
	Location string

	// Repository is the opened cache entry, nil unless Cached.
	Repository Repository

	// Cached reports a cache hit.
	Cached bool
}

// Option configures a Cache.
type Option func(*cacheOptions)
