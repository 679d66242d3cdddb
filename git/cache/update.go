package cache

import (
	"context"

	"github.com/yngvem/briefcase/console"
	platformerrors "github.com/yngvem/briefcase/errors"
	"github.com/yngvem/briefcase/git"
)

const offlineWarning = `
Briefcase is unable the update the application template. This
may be because your computer is currently offline. Briefcase will
use existing template without updating.
`

// Update refreshes a cached clone and checks out ref.
//
// The origin remote is fetched exactly once. If it cannot be reached a
// warning is printed and the possibly stale local refs are used; any other
// fetch failure is CodeNetwork. A ref missing from the remote is
// CodeUnsupportedVersion.
func (c *Cache) Update(ctx context.Context, repo Repository, ref string) error {
	remote, err := repo.Remote(git.DefaultRemote)
	if err != nil {
		return platformerrors.WrapWithContext(err, platformerrors.GetCode(err),
			"cached template has no origin remote", map[string]any{"branch": ref})
	}

	if err := remote.Fetch(ctx); err != nil {
		if !platformerrors.HasCode(err, platformerrors.CodeUnreachable) {
			return platformerrors.WrapWithContext(err, platformerrors.CodeNetwork,
				"failed to update template", map[string]any{"branch": ref})
		}

		c.logger.Warn().Err(err).Str("branch", ref).Msg("Template remote unreachable, using cached copy")
		if err := console.Banner(c.stdout, console.LevelWarning,
			"WARNING: Unable to update template", offlineWarning); err != nil {
			c.logger.Debug().Err(err).Msg("Failed to print offline warning")
		}
	}

	head, err := remote.Ref(ref)
	if err != nil {
		if platformerrors.HasCode(err, platformerrors.CodeRefNotFound) {
			return platformerrors.WrapWithContext(err, platformerrors.CodeUnsupportedVersion,
				"template does not support this version", map[string]any{"branch": ref})
		}
		return platformerrors.WrapWithContext(err, platformerrors.GetCode(err),
			"failed to resolve template branch", map[string]any{"branch": ref})
	}

	if err := head.Checkout(); err != nil {
		return platformerrors.WrapWithContext(err, platformerrors.GetCode(err),
			"failed to check out template branch", map[string]any{"branch": ref})
	}

	c.logger.Debug().Str("branch", ref).Msg("Checked out cached template")
	return nil
}
