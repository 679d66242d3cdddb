package cookiecutter

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/yngvem/briefcase/exec"
)

type rendererOptions struct {
	executor exec.Executor
	command  string
	cacheDir string
	tempDir  string
	timeout  time.Duration
	logger   *zerolog.Logger
}

// Option configures a Renderer.
type Option func(*rendererOptions)

// WithExecutor sets the executor cookiecutter runs through.
func WithExecutor(executor exec.Executor) Option {
	return func(opts *rendererOptions) {
		opts.executor = executor
	}
}

// WithCommand sets the cookiecutter executable. Defaults to DefaultCommand.
func WithCommand(command string) Option {
	return func(opts *rendererOptions) {
		if command != "" {
			opts.command = command
		}
	}
}

// WithCacheDir sets where cookiecutter keeps cloned templates. It should
// match the template cache directory.
func WithCacheDir(dir string) Option {
	return func(opts *rendererOptions) {
		opts.cacheDir = dir
	}
}

// WithTempDir sets where config files are written. Defaults to os.TempDir().
func WithTempDir(dir string) Option {
	return func(opts *rendererOptions) {
		opts.tempDir = dir
	}
}

// WithTimeout bounds each render. Zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(opts *rendererOptions) {
		opts.timeout = timeout
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(opts *rendererOptions) {
		opts.logger = &logger
	}
}
