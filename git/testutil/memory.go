// Package testutil provides in-memory testing utilities for the git package.
// It builds template repositories on billy's memfs and serves them over an
// in-process file transport so fetches and clones run without a network.
package testutil

import (
	"context"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/client"
	"github.com/go-git/go-git/v5/plumbing/transport/server"
	"github.com/yngvem/briefcase/git"
)

// NewMemoryRepo creates a new in-memory Git repository rooted at "/".
//
// The returned filesystem can be used to create files in the working tree.
//
// Example:
//
//	repo, fs, err := testutil.NewMemoryRepo()
//	if err != nil {
//	    t.Fatal(err)
//	}
func NewMemoryRepo() (*git.Repository, billy.Filesystem, error) {
	fs := memfs.New()

	repo, err := git.Init("/", git.WithFilesystem(fs))
	if err != nil {
		//nolint:wrapcheck // Test utility - errors from git package are already wrapped
		return nil, nil, err
	}

	return repo, fs, nil
}

// CreateTestFile creates a file with the specified content, creating parent
// directories as needed and truncating existing files.
func CreateTestFile(fs billy.Filesystem, path, content string) error {
	file, err := fs.Create(path)
	if err != nil {
		//nolint:wrapcheck // Test utility - simple file operation error
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	_, err = file.Write([]byte(content))
	//nolint:wrapcheck // Test utility - simple file operation error
	return err
}

// CreateTestCommitWithFile writes a file into the working tree and commits it
// with the test author. Returns the commit hash.
func CreateTestCommitWithFile(repo *git.Repository, path, content, message string) (string, error) {
	if err := CreateTestFile(repo.Filesystem(), path, content); err != nil {
		return "", err
	}

	//nolint:wrapcheck // Test utility - errors from git package are already wrapped
	return repo.CreateCommit(git.CommitOptions{
		Author:  TestAuthor,
		Email:   TestEmail,
		Message: message,
	})
}

// NewTemplateUpstream creates a template repository at UpstreamPath on fs
// with one branch per entry in branches. Each branch holds a cookiecutter.json
// and a VERSION file containing the branch name. Returns the commit hash of
// every branch.
//
// Example:
//
//	fs := memfs.New()
//	hashes, err := testutil.NewTemplateUpstream(fs, "v0.3.12", "main")
func NewTemplateUpstream(fs billy.Filesystem, branches ...string) (map[string]string, error) {
	repo, err := git.Init(UpstreamPath, git.WithFilesystem(fs))
	if err != nil {
		//nolint:wrapcheck // Test utility - errors from git package are already wrapped
		return nil, err
	}

	if err := CreateTestFile(repo.Filesystem(), TemplateConfigPath, TemplateConfigContent); err != nil {
		return nil, err
	}

	hashes := make(map[string]string, len(branches))
	for _, branch := range branches {
		hash, err := CreateTestCommitWithFile(repo, TemplateVersionPath, branch+"\n", "Template for "+branch)
		if err != nil {
			return nil, err
		}
		if err := repo.CreateBranch(branch, hash); err != nil {
			//nolint:wrapcheck // Test utility - errors from git package are already wrapped
			return nil, err
		}
		hashes[branch] = hash
	}

	return hashes, nil
}

// AddUpstreamBranch commits a new VERSION on the upstream's current HEAD and
// points branch at it, simulating a template release after a cache was made.
func AddUpstreamBranch(fs billy.Filesystem, branch string) (string, error) {
	repo, err := git.Open(UpstreamPath, git.WithFilesystem(fs))
	if err != nil {
		//nolint:wrapcheck // Test utility - errors from git package are already wrapped
		return "", err
	}

	hash, err := CreateTestCommitWithFile(repo, TemplateVersionPath, branch+"\n", "Template for "+branch)
	if err != nil {
		return "", err
	}

	//nolint:wrapcheck // Test utility - errors from git package are already wrapped
	return hash, repo.CreateBranch(branch, hash)
}

// ServeFilesystem routes file:// URLs to repositories stored on fs through
// go-git's in-process server. The returned function restores the previous
// transport and should be deferred.
func ServeFilesystem(fs billy.Filesystem) func() {
	previous := client.Protocols["file"]
	client.InstallProtocol("file", server.NewClient(server.NewFilesystemLoader(fs)))

	return func() {
		client.InstallProtocol("file", previous)
	}
}

// CloneUpstream clones UpstreamURL into path on fs, producing a populated
// cache entry. ServeFilesystem must be active.
func CloneUpstream(ctx context.Context, fs billy.Filesystem, path string) (*git.Repository, error) {
	//nolint:wrapcheck // Test utility - errors from git package are already wrapped
	return git.Clone(ctx, UpstreamURL, path, git.WithFilesystem(fs))
}

// Unreachable is a transport that fails every connection the way a dial
// error would, for simulating offline operation.
type Unreachable struct{}

var _ transport.Transport = Unreachable{}

func (Unreachable) NewUploadPackSession(*transport.Endpoint, transport.AuthMethod) (transport.UploadPackSession, error) {
	return nil, errUnreachable
}

func (Unreachable) NewReceivePackSession(*transport.Endpoint, transport.AuthMethod) (transport.ReceivePackSession, error) {
	return nil, errUnreachable
}

// ServeUnreachable makes every file:// URL unreachable until the returned
// function is called.
func ServeUnreachable() func() {
	previous := client.Protocols["file"]
	client.InstallProtocol("file", Unreachable{})

	return func() {
		client.InstallProtocol("file", previous)
	}
}
