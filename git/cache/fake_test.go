package cache

import (
	"context"
	"fmt"

	platformerrors "github.com/yngvem/briefcase/errors"
)

// recorder collects the calls made against the fake VCS in order.
type recorder struct {
	calls []string
}

func (r *recorder) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

type fakeOpener struct {
	rec     *recorder
	repos   map[string]*fakeRepository
	openErr error
}

func (o *fakeOpener) Open(path string) (Repository, error) {
	o.rec.record("open %s", path)
	if o.openErr != nil {
		return nil, o.openErr
	}
	repo, ok := o.repos[path]
	if !ok {
		return nil, platformerrors.New(platformerrors.CodeNoSuchPath, "no such path")
	}
	return repo, nil
}

type fakeRepository struct {
	rec    *recorder
	remote *fakeRemote
}

func (r *fakeRepository) Remote(name string) (Remote, error) {
	r.rec.record("remote %s", name)
	if r.remote == nil {
		return nil, platformerrors.New(platformerrors.CodeNotFound, "remote not found")
	}
	return r.remote, nil
}

type fakeRemote struct {
	rec      *recorder
	refs     []string
	fetchErr error
}

func (r *fakeRemote) Fetch(context.Context) error {
	r.rec.record("fetch")
	return r.fetchErr
}

func (r *fakeRemote) Ref(name string) (Ref, error) {
	r.rec.record("ref %s", name)
	for _, ref := range r.refs {
		if ref == name {
			return &fakeRef{rec: r.rec, name: name}, nil
		}
	}
	return nil, platformerrors.New(platformerrors.CodeRefNotFound, "reference not found")
}

type fakeRef struct {
	rec  *recorder
	name string
}

func (r *fakeRef) Checkout() error {
	r.rec.record("checkout %s", r.name)
	return nil
}

// newFakeVCS returns an opener with one cached clone at path.
func newFakeVCS(path string, refs ...string) (*fakeOpener, *fakeRemote, *recorder) {
	rec := &recorder{}
	remote := &fakeRemote{rec: rec, refs: refs}
	opener := &fakeOpener{
		rec:   rec,
		repos: map[string]*fakeRepository{path: {rec: rec, remote: remote}},
	}
	return opener, remote, rec
}
