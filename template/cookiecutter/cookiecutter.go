package cookiecutter

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	platformerrors "github.com/yngvem/briefcase/errors"
	"github.com/yngvem/briefcase/exec"
	"github.com/yngvem/briefcase/template"
	"gopkg.in/yaml.v3"
)

// DefaultCommand is the cookiecutter executable.
const DefaultCommand = "cookiecutter"

// exitFatal is git's exit status for fatal errors, surfaced by cookiecutter
// when it cannot clone.
const exitFatal = 128

// Renderer implements template.Renderer with the cookiecutter CLI.
type Renderer struct {
	cli      *exec.CommandWrapper
	cacheDir string
	tempDir  string
	timeout  time.Duration
	logger   zerolog.Logger
}

var _ template.Renderer = (*Renderer)(nil)

// New creates a Renderer.
//
// Example:
//
//	r := cookiecutter.New(
//		cookiecutter.WithCacheDir(c.Dir()),
//		cookiecutter.WithTimeout(10*time.Minute),
//	)
func New(opts ...Option) *Renderer {
	options := &rendererOptions{command: DefaultCommand}
	for _, opt := range opts {
		opt(options)
	}

	executor := options.executor
	if executor == nil {
		executor = exec.New(exec.WithInheritEnv())
	}

	r := &Renderer{
		cli:      exec.NewWrapper(executor, options.command),
		cacheDir: options.cacheDir,
		tempDir:  options.tempDir,
		timeout:  options.timeout,
		logger:   zerolog.Nop(),
	}
	if options.logger != nil {
		r.logger = *options.logger
	}
	return r
}

// config is the subset of cookiecutter's user config we write.
type config struct {
	CookiecuttersDir string                `yaml:"cookiecutters_dir,omitempty"`
	DefaultContext   template.RenderContext `yaml:"default_context"`
}

// Render runs cookiecutter for req.
func (r *Renderer) Render(ctx context.Context, req template.RenderRequest) error {
	configPath, err := r.writeConfig(req.ExtraContext)
	if err != nil {
		return err
	}
	defer func() {
		if err := os.Remove(configPath); err != nil {
			r.logger.Debug().Err(err).Str("path", configPath).Msg("Failed to remove cookiecutter config")
		}
	}()

	args := []string{}
	if req.NoInput {
		args = append(args, "--no-input")
	}
	if req.Checkout != "" {
		args = append(args, "--checkout", req.Checkout)
	}
	args = append(args,
		"--output-dir", req.OutputDir,
		"--config-file", configPath,
		req.Template,
	)

	r.logger.Debug().Str("command", r.cli.Name()).Strs("args", args).Msg("Running render engine")
	_, err = r.cli.WithContext(ctx).WithTimeout(r.timeout).WithDisableColors().Run(args...)
	if err != nil {
		return classify(err, req)
	}
	return nil
}

func (r *Renderer) writeConfig(extra template.RenderContext) (string, error) {
	if extra == nil {
		extra = template.RenderContext{}
	}

	data, err := yaml.Marshal(config{CookiecuttersDir: r.cacheDir, DefaultContext: extra})
	if err != nil {
		return "", platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to encode render context")
	}

	f, err := os.CreateTemp(r.tempDir, "briefcase-cookiecutter-*.yaml")
	if err != nil {
		return "", platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to create cookiecutter config")
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		_ = os.Remove(f.Name())
		return "", platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to write cookiecutter config")
	}
	return f.Name(), nil
}

// classify maps a failed cookiecutter run to an error code. The branch
// check comes first because its message also says "could not".
func classify(err error, req template.RenderRequest) error {
	output := err.Error()
	var execErr *exec.ExecError
	if platformerrors.As(err, &execErr) {
		output = execErr.Output()
	}
	exitCode := exec.ExitCode(err)

	code := platformerrors.CodeExecutionFailed
	message := "template rendering failed"
	switch {
	case strings.Contains(output, "branch of repository") || strings.Contains(output, "could not found"):
		code = platformerrors.CodeCloneFailed
		message = "template branch could not be checked out"
	case strings.Contains(output, "could not be found") || strings.Contains(output, "A valid repository"):
		code = platformerrors.CodeRepositoryNotFound
		message = "template repository could not be found"
	case strings.Contains(output, "exit status 128") || exitCode == exitFatal:
		code = platformerrors.CodeUnreachable
		message = "template repository could not be cloned"
	}

	return platformerrors.WrapWithContext(err, code, message, map[string]any{
		"template":  req.Template,
		"branch":    req.Checkout,
		"exit_code": exitCode,
		"output":    strings.TrimSpace(output),
	})
}
