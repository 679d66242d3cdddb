package template

import (
	"context"
	"fmt"

	platformerrors "github.com/yngvem/briefcase/errors"
	"github.com/yngvem/briefcase/git/cache"
)

// recorder collects calls made against the fakes in order.
type recorder struct {
	calls []string
}

func (r *recorder) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

type fakeOpener struct {
	rec   *recorder
	repos map[string]*fakeRepository
}

func (o *fakeOpener) Open(path string) (cache.Repository, error) {
	o.rec.record("open %s", path)
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

func (r *fakeRepository) Remote(name string) (cache.Remote, error) {
	r.rec.record("remote %s", name)
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

func (r *fakeRemote) Ref(name string) (cache.Ref, error) {
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

// fakeRenderer records render requests. Failures are looked up by
// checkout reference.
type fakeRenderer struct {
	rec      *recorder
	requests []RenderRequest
	failures map[string]error
}

func (r *fakeRenderer) Render(_ context.Context, req RenderRequest) error {
	r.rec.record("render %s@%s", req.Template, req.Checkout)
	r.requests = append(r.requests, req)
	return r.failures[req.Checkout]
}
