package cache

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	platformerrors "github.com/yngvem/briefcase/errors"
)

const (
	templateURL = "https://github.com/beeware/briefcase-tester-dummy-template.git"
	entryPath   = "/cache/briefcase-tester-dummy-template"
)

func TestNew_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(ConfigEnv, "")

	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, home+"/.cookiecutters", c.Dir())
	assert.Equal(t, home+"/.cookiecutters/briefcase-tester-dummy-template", c.EntryPath(templateURL))
}

func TestResolve_LocalPath(t *testing.T) {
	opener, _, rec := newFakeVCS(entryPath)
	c, err := New(WithDir("/cache"), WithOpener(opener))
	require.NoError(t, err)

	res, err := c.Resolve("/path/to/template")
	require.NoError(t, err)
	assert.Equal(t, Resolution{Location: "/path/to/template"}, res)
	assert.Empty(t, rec.calls)
}

func TestResolve_Miss(t *testing.T) {
	opener, _, rec := newFakeVCS("/elsewhere")
	c, err := New(WithDir("/cache"), WithOpener(opener))
	require.NoError(t, err)

	res, err := c.Resolve(templateURL)
	require.NoError(t, err)
	assert.Equal(t, templateURL, res.Location)
	assert.False(t, res.Cached)
	assert.Nil(t, res.Repository)
	assert.Equal(t, []string{"open " + entryPath}, rec.calls)
}

func TestResolve_Hit(t *testing.T) {
	opener, _, rec := newFakeVCS(entryPath)
	c, err := New(WithDir("/cache"), WithOpener(opener))
	require.NoError(t, err)

	res, err := c.Resolve(templateURL)
	require.NoError(t, err)
	assert.Equal(t, entryPath, res.Location)
	assert.True(t, res.Cached)
	assert.NotNil(t, res.Repository)
	assert.Equal(t, []string{"open " + entryPath}, rec.calls)
}

func TestResolve_OpenError(t *testing.T) {
	opener, _, _ := newFakeVCS(entryPath)
	opener.openErr = platformerrors.New(platformerrors.CodeNotFound, "repository does not exist")
	c, err := New(WithDir("/cache"), WithOpener(opener))
	require.NoError(t, err)

	_, err = c.Resolve(templateURL)
	require.Error(t, err)
	assert.Equal(t, platformerrors.CodeNotFound, platformerrors.GetCode(err))
}

func resolveHit(t *testing.T, refs ...string) (*Cache, Repository, *fakeRemote, *recorder, *bytes.Buffer) {
	t.Helper()

	opener, remote, rec := newFakeVCS(entryPath, refs...)
	var stdout bytes.Buffer
	c, err := New(WithDir("/cache"), WithOpener(opener), WithStdout(&stdout))
	require.NoError(t, err)

	res, err := c.Resolve(templateURL)
	require.NoError(t, err)
	require.True(t, res.Cached)
	rec.calls = nil

	return c, res.Repository, remote, rec, &stdout
}

func TestUpdate(t *testing.T) {
	c, repo, _, rec, stdout := resolveHit(t, "v0.3.12", "main")

	require.NoError(t, c.Update(context.Background(), repo, "v0.3.12"))
	assert.Equal(t, []string{"remote origin", "fetch", "ref v0.3.12", "checkout v0.3.12"}, rec.calls)
	assert.Empty(t, stdout.String())
}

func TestUpdate_Offline(t *testing.T) {
	c, repo, remote, rec, stdout := resolveHit(t, "v0.3.12")
	remote.fetchErr = platformerrors.New(platformerrors.CodeUnreachable, "exit status 128")

	require.NoError(t, c.Update(context.Background(), repo, "v0.3.12"))
	assert.Equal(t, []string{"remote origin", "fetch", "ref v0.3.12", "checkout v0.3.12"}, rec.calls)
	assert.Contains(t, stdout.String(), "** WARNING: Unable to update template")
	assert.Contains(t, stdout.String(), "currently offline")
}

func TestUpdate_FetchFailure(t *testing.T) {
	c, repo, remote, rec, stdout := resolveHit(t, "v0.3.12")
	remote.fetchErr = errors.New("unexpected EOF")

	err := c.Update(context.Background(), repo, "v0.3.12")
	require.Error(t, err)
	assert.Equal(t, platformerrors.CodeNetwork, platformerrors.GetCode(err))
	assert.Equal(t, []string{"remote origin", "fetch"}, rec.calls)
	assert.Empty(t, stdout.String())
}

func TestUpdate_MissingRef(t *testing.T) {
	c, repo, _, rec, _ := resolveHit(t, "main")

	err := c.Update(context.Background(), repo, "v0.3.12")
	require.Error(t, err)
	assert.Equal(t, platformerrors.CodeUnsupportedVersion, platformerrors.GetCode(err))

	var pe platformerrors.PlatformError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "v0.3.12", pe.Context()["branch"])
	assert.Equal(t, []string{"remote origin", "fetch", "ref v0.3.12"}, rec.calls)
}

func TestUpdate_OfflineMissingRef(t *testing.T) {
	c, repo, remote, _, stdout := resolveHit(t, "main")
	remote.fetchErr = platformerrors.New(platformerrors.CodeUnreachable, "offline")

	err := c.Update(context.Background(), repo, "v0.3.12")
	assert.Equal(t, platformerrors.CodeUnsupportedVersion, platformerrors.GetCode(err))
	assert.Contains(t, stdout.String(), "** WARNING: Unable to update template")
}

func TestUpdate_NoOrigin(t *testing.T) {
	rec := &recorder{}
	c, err := New(WithDir("/cache"), WithOpener(&fakeOpener{rec: rec}))
	require.NoError(t, err)

	err = c.Update(context.Background(), &fakeRepository{rec: rec}, "main")
	require.Error(t, err)
	assert.Equal(t, platformerrors.CodeNotFound, platformerrors.GetCode(err))
}

func TestResolve_Abbreviation(t *testing.T) {
	opener, _, rec := newFakeVCS(entryPath)
	c, err := New(WithDir("/cache"), WithOpener(opener))
	require.NoError(t, err)

	res, err := c.Resolve("gh:beeware/briefcase-tester-dummy-template")
	require.NoError(t, err)
	assert.True(t, res.Cached)
	assert.Equal(t, entryPath, res.Location)
	assert.Equal(t, []string{"open " + entryPath}, rec.calls)
}
