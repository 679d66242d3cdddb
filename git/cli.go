package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	platformerrors "github.com/yngvem/briefcase/errors"
	"github.com/yngvem/briefcase/exec"
)

// exitFatal is the status git exits with when it cannot talk to a remote
// (and for most other fatal errors).
const exitFatal = 128

// cliRemoteOps performs network operations with the git binary, honouring
// the user's credential helpers, proxies and SSH configuration.
type cliRemoteOps struct {
	git *exec.CommandWrapper
}

// NewCLIRemoteOperations returns RemoteOperations backed by the git CLI run
// through executor. Repositories must live on the OS filesystem.
//
// Example:
//
//	ops := git.NewCLIRemoteOperations(exec.New(exec.WithInheritEnv()))
//	repo, err := git.Open(path, git.WithRemoteOperations(ops))
func NewCLIRemoteOperations(executor exec.Executor) RemoteOperations {
	return &cliRemoteOps{git: exec.NewWrapper(executor, "git")}
}

// rootOf returns the OS path a billy filesystem is rooted at.
func rootOf(fs billy.Filesystem) (string, error) {
	root := fs.Root()
	if !filepath.IsAbs(root) {
		return "", platformerrors.Newf(platformerrors.CodeInvalidInput,
			"git CLI operations need an absolute OS path, got %q", root)
	}
	return root, nil
}

func (c *cliRemoteOps) Clone(ctx context.Context, fs billy.Filesystem, url string) (*Repository, error) {
	root, err := rootOf(fs)
	if err != nil {
		return nil, err
	}

	if _, err := c.git.WithContext(ctx).WithDisableColors().Run("clone", "--quiet", "--origin", DefaultRemote, url, root); err != nil {
		return nil, cliError(err, fmt.Sprintf("failed to clone %s", url))
	}

	return Open(root, WithRemoteOperations(c))
}

func (c *cliRemoteOps) Fetch(ctx context.Context, repo *Repository, opts FetchOptions) error {
	root, err := rootOf(repo.fs)
	if err != nil {
		return err
	}

	remoteName := opts.RemoteName
	if remoteName == "" {
		remoteName = DefaultRemote
	}

	if _, err := c.git.WithContext(ctx).WithDir(root).WithDisableColors().Run("fetch", "--quiet", remoteName); err != nil {
		return cliError(err, fmt.Sprintf("failed to fetch from %s", remoteName))
	}

	return nil
}

// cliError classifies a failed git invocation by its exit status.
func cliError(err error, message string) error {
	code := platformerrors.CodeExecutionFailed
	if exec.ExitCode(err) == exitFatal {
		code = platformerrors.CodeUnreachable
	}

	var execErr *exec.ExecError
	ctx := map[string]any{"exit_code": exec.ExitCode(err)}
	if platformerrors.As(err, &execErr) {
		ctx["output"] = strings.TrimSpace(execErr.Output())
	}

	return platformerrors.WrapWithContext(err, code, message, ctx)
}
