package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// CreateBranch creates a local branch at ref (a hash, branch, tag or "HEAD")
// without checking it out.
//
// Returns CodeAlreadyExists if the branch exists and CodeRefNotFound if ref
// does not resolve.
//
// Example:
//
//	err := repo.CreateBranch("v0.3.12", "HEAD")
func (r *Repository) CreateBranch(name, ref string) error {
	if name == "" || ref == "" {
		return wrapError(fmt.Errorf("branch name and reference are required"), "failed to create branch")
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return wrapError(err, fmt.Sprintf("failed to resolve reference %q", ref))
	}

	branchRef := plumbing.NewBranchReferenceName(name)
	if _, err := r.repo.Reference(branchRef, false); err == nil {
		return wrapError(gogit.ErrBranchExists, fmt.Sprintf("failed to create branch %q", name))
	}

	if err := r.repo.Storer.SetReference(plumbing.NewHashReference(branchRef, *hash)); err != nil {
		return wrapError(err, fmt.Sprintf("failed to create branch %q", name))
	}

	return nil
}
