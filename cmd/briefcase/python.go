package main

import (
	"context"
	"regexp"

	platformerrors "github.com/yngvem/briefcase/errors"
	"github.com/yngvem/briefcase/exec"
)

var pythonVersionPattern = regexp.MustCompile(`Python (\d+\.\d+(?:\.\d+)?)`)

// pythonVersion asks the python3 on PATH for its version, e.g. "3.12.1".
func pythonVersion(ctx context.Context, executor exec.Executor) (string, error) {
	res, err := exec.NewWrapper(executor, "python3").WithContext(ctx).Run("--version")
	if err != nil {
		return "", platformerrors.Wrap(err, platformerrors.CodeExecutionFailed, "failed to determine the Python version")
	}

	// Python 2 printed its version to stderr.
	match := pythonVersionPattern.FindStringSubmatch(res.Stdout + res.Stderr)
	if match == nil {
		return "", platformerrors.WithContext(
			platformerrors.New(platformerrors.CodeExecutionFailed, "unrecognised Python version output"),
			"output", res.Stdout)
	}
	return match[1], nil
}
