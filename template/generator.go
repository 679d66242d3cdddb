package template

import (
	"context"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog"
	platformerrors "github.com/yngvem/briefcase/errors"
	"github.com/yngvem/briefcase/git/cache"
	"github.com/yngvem/briefcase/version"
)

// TemplateCache resolves template locations against local clones and
// refreshes them. *cache.Cache implements it.
type TemplateCache interface {
	Resolve(location string) (cache.Resolution, error)
	Update(ctx context.Context, repo cache.Repository, ref string) error
}

// Generator renders application templates.
type Generator struct {
	cache          TemplateCache
	renderer       Renderer
	version        *version.Version
	organization   string
	fallbackBranch string
	pythonVersion  string
	fs             billy.Filesystem
	clock          func() time.Time
	logger         zerolog.Logger
}

// NewGenerator creates a Generator for the given tool version.
func NewGenerator(c TemplateCache, renderer Renderer, v *version.Version, opts ...GeneratorOption) *Generator {
	options := &generatorOptions{}
	for _, opt := range opts {
		opt(options)
	}

	g := &Generator{
		cache:          c,
		renderer:       renderer,
		version:        v,
		organization:   options.organization,
		fallbackBranch: options.fallbackBranch,
		pythonVersion:  options.pythonVersion,
		fs:             options.fs,
		clock:          options.clock,
		logger:         zerolog.Nop(),
	}
	if g.organization == "" {
		g.organization = DefaultOrganization
	}
	if g.fallbackBranch == "" {
		g.fallbackBranch = FallbackBranch
	}
	if g.fs == nil {
		g.fs = osfs.New("/")
	}
	if g.clock == nil {
		g.clock = time.Now
	}
	if options.logger != nil {
		g.logger = *options.logger
	}

	return g
}

// Generate renders the template for app into target.OutputDir.
//
// The checkout reference is app.TemplateBranch when set, otherwise the
// version branch of the tool ("v0.3.14" for 0.3.14.dev5). A development
// build whose version branch is missing from a remote template is
// retried once on the fallback branch.
//
// Errors carry CodeInvalidTemplate when the location is not a template
// repository, CodeUnsupportedVersion when the branch is missing and
// CodeNetwork when the template could not be downloaded. The returned
// Result is valid in either case.
func (g *Generator) Generate(ctx context.Context, app AppConfig, target Target) (Result, error) {
	location, populated := Locate(app, target, g.organization)
	result := Result{Template: location, TemplatePopulated: populated}
	g.logger.Debug().
		Str("template", location).
		Bool("default", populated).
		Str("platform", target.Identifier()).
		Msg("Resolved template location")

	if err := g.ensureOutputDir(target.OutputDir); err != nil {
		return result, err
	}
	extra := NewRenderContext(app, target, g.pythonVersion, g.clock())

	ref := app.TemplateBranch
	if ref == "" {
		ref = g.version.CheckoutRef()
	}

	result.Checkout = ref
	result.Attempts = 1
	err := g.generate(ctx, location, ref, target.OutputDir, extra)
	if err == nil || !g.canFallback(err, app, location) {
		return result, err
	}

	g.logger.Info().
		Str("template", location).
		Str("branch", ref).
		Str("fallback", g.fallbackBranch).
		Msg("Template branch not found, falling back")
	result.Checkout = g.fallbackBranch
	result.Attempts = 2
	return result, g.generate(ctx, location, g.fallbackBranch, target.OutputDir, extra)
}

// canFallback reports whether a failed attempt may be retried on the
// fallback branch. Only development builds using the version branch of a
// remote template qualify.
func (g *Generator) canFallback(err error, app AppConfig, location string) bool {
	return platformerrors.HasCode(err, platformerrors.CodeUnsupportedVersion) &&
		app.TemplateBranch == "" &&
		g.version.IsDevelopment() &&
		cache.IsRepoURL(cache.ExpandAbbreviation(location))
}

// generate is a single attempt: resolve the cache, refresh a cached
// clone, then render.
func (g *Generator) generate(ctx context.Context, location, ref, outputDir string, extra RenderContext) error {
	resolution, err := g.cache.Resolve(location)
	if err != nil {
		return err
	}

	if resolution.Cached {
		if err := g.cache.Update(ctx, resolution.Repository, ref); err != nil {
			return err
		}
	}

	g.logger.Debug().
		Str("template", resolution.Location).
		Str("branch", ref).
		Bool("cached", resolution.Cached).
		Msg("Rendering template")

	err = g.renderer.Render(ctx, RenderRequest{
		Template:     resolution.Location,
		Checkout:     ref,
		OutputDir:    outputDir,
		ExtraContext: extra,
		NoInput:      true,
	})
	return translateRenderError(err, location, ref)
}

func translateRenderError(err error, location, ref string) error {
	if err == nil {
		return nil
	}

	ctx := map[string]any{"template": location, "branch": ref}
	switch {
	case platformerrors.HasCode(err, platformerrors.CodeRepositoryNotFound):
		return platformerrors.WrapWithContext(err, platformerrors.CodeInvalidTemplate,
			"unable to find a template repository", ctx)
	case platformerrors.HasCode(err, platformerrors.CodeCloneFailed):
		return platformerrors.WrapWithContext(err, platformerrors.CodeUnsupportedVersion,
			"template does not support this version", ctx)
	case platformerrors.HasCode(err, platformerrors.CodeUnreachable):
		return platformerrors.WrapWithContext(err, platformerrors.CodeNetwork,
			"unable to download template", ctx)
	default:
		return err
	}
}

func (g *Generator) ensureOutputDir(dir string) error {
	if dir == "" {
		return platformerrors.New(platformerrors.CodeInvalidInput, "output directory is required")
	}

	path := dir
	if root := g.fs.Root(); root == "/" || root == string(filepath.Separator) {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return platformerrors.Wrap(err, platformerrors.CodeInvalidInput, "invalid output directory")
		}
		path = abs
	}

	if err := g.fs.MkdirAll(path, 0o755); err != nil {
		return platformerrors.WrapWithContext(err, platformerrors.CodeInternal,
			"failed to create output directory", map[string]any{"path": path})
	}
	return nil
}
