package template

import (
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"
)

type generatorOptions struct {
	organization   string
	fallbackBranch string
	pythonVersion  string
	fs             billy.Filesystem
	clock          func() time.Time
	logger         *zerolog.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*generatorOptions)

// WithOrganization sets where default templates are looked up. Defaults to
// DefaultOrganization.
func WithOrganization(organization string) GeneratorOption {
	return func(opts *generatorOptions) {
		opts.organization = organization
	}
}

// WithFallbackBranch sets the branch development builds fall back to.
// Defaults to FallbackBranch.
func WithFallbackBranch(branch string) GeneratorOption {
	return func(opts *generatorOptions) {
		opts.fallbackBranch = branch
	}
}

// WithPythonVersion sets the python_version render variable.
func WithPythonVersion(v string) GeneratorOption {
	return func(opts *generatorOptions) {
		opts.pythonVersion = v
	}
}

// WithFilesystem sets the filesystem output directories are created on.
// Defaults to the OS filesystem.
func WithFilesystem(fs billy.Filesystem) GeneratorOption {
	return func(opts *generatorOptions) {
		opts.fs = fs
	}
}

// WithClock sets the source of the year and month render variables.
func WithClock(clock func() time.Time) GeneratorOption {
	return func(opts *generatorOptions) {
		opts.clock = clock
	}
}

// WithLogger sets the logger. Defaults to a disabled logger.
func WithLogger(logger zerolog.Logger) GeneratorOption {
	return func(opts *generatorOptions) {
		opts.logger = &logger
	}
}
