package git

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	platformerrors "github.com/yngvem/briefcase/errors"
)

// Ref looks up the remote-tracking branch name of this remote, as recorded
// by the last fetch.
//
// Returns CodeRefNotFound if the remote has no such branch.
//
// Example:
//
//	ref, err := remote.Ref("v0.3.12") // refs/remotes/origin/v0.3.12
func (rm *Remote) Ref(name string) (*Ref, error) {
	refName := plumbing.NewRemoteReferenceName(rm.Name, name)

	ref, err := rm.repo.repo.Reference(refName, true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			ctx := map[string]any{"remote": rm.Name, "ref": name}
			if available, listErr := rm.Refs(); listErr == nil {
				sort.Strings(available)
				ctx["available"] = available
			}
			return nil, platformerrors.WrapWithContext(err, platformerrors.CodeRefNotFound,
				fmt.Sprintf("remote %s has no branch %q", rm.Name, name), ctx)
		}
		return nil, wrapError(err, fmt.Sprintf("failed to resolve %s", refName))
	}

	return &Ref{
		Name:      name,
		Reference: refName,
		Hash:      ref.Hash(),
		repo:      rm.repo,
	}, nil
}

// Refs lists the short names of this remote's tracking branches.
func (rm *Remote) Refs() ([]string, error) {
	iter, err := rm.repo.repo.References()
	if err != nil {
		return nil, wrapError(err, "failed to list references")
	}
	defer iter.Close()

	prefix := plumbing.NewRemoteReferenceName(rm.Name, "").String()
	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if short, ok := strings.CutPrefix(ref.Name().String(), prefix); ok && short != "HEAD" {
			names = append(names, short)
		}
		return nil
	})
	if err != nil {
		return nil, wrapError(err, "failed to iterate references")
	}

	return names, nil
}

// Checkout forcibly checks out the ref's commit into the working tree,
// leaving HEAD detached. Local modifications are discarded.
func (ref *Ref) Checkout() error {
	wt, err := ref.repo.repo.Worktree()
	if err != nil {
		return wrapError(err, "failed to get worktree")
	}

	err = wt.Checkout(&gogit.CheckoutOptions{
		Hash:  ref.Hash,
		Force: true,
	})
	if err != nil {
		return wrapError(err, fmt.Sprintf("failed to check out %s", ref.Reference))
	}

	return nil
}
