package cache

import (
	"context"

	"github.com/yngvem/briefcase/git"
)

// gitOpener opens cache entries with the git package.
type gitOpener struct {
	opts []git.RepositoryOption
}

// NewGitOpener returns an Opener backed by go-git. The options are passed to
// git.Open for every entry.
func NewGitOpener(opts ...git.RepositoryOption) Opener {
	return &gitOpener{opts: opts}
}

func (o *gitOpener) Open(path string) (Repository, error) {
	repo, err := git.Open(path, o.opts...)
	if err != nil {
		//nolint:wrapcheck // git errors are already classified
		return nil, err
	}
	return &gitRepository{repo: repo}, nil
}

type gitRepository struct {
	repo *git.Repository
}

func (r *gitRepository) Remote(name string) (Remote, error) {
	remote, err := r.repo.Remote(name)
	if err != nil {
		//nolint:wrapcheck // git errors are already classified
		return nil, err
	}
	return &gitRemote{remote: remote}, nil
}

type gitRemote struct {
	remote *git.Remote
}

func (r *gitRemote) Fetch(ctx context.Context) error {
	//nolint:wrapcheck // git errors are already classified
	return r.remote.Fetch(ctx)
}

func (r *gitRemote) Ref(name string) (Ref, error) {
	ref, err := r.remote.Ref(name)
	if err != nil {
		//nolint:wrapcheck // git errors are already classified
		return nil, err
	}
	return ref, nil
}
