package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yngvem/briefcase/config"
	"github.com/yngvem/briefcase/git"
	"github.com/yngvem/briefcase/git/cache"
	"github.com/yngvem/briefcase/logging"
	"github.com/yngvem/briefcase/template"
	"github.com/yngvem/briefcase/template/cookiecutter"
	briefcaseversion "github.com/yngvem/briefcase/version"
)

type createOptions struct {
	app            string
	project        string
	output         string
	template       string
	templateBranch string
	settings       string
}

func newCreateCmd(rt *runtime) *cobra.Command {
	opts := &createOptions{}

	cmd := &cobra.Command{
		Use:   "create <platform> <format>",
		Short: "Create a platform project from the app template",
		Long: `Create renders the template for <platform> and <format> into the output
directory. Without --template the default template for the platform is
used, checked out at the branch matching this version of briefcase.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, rt, opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVarP(&opts.app, "app", "a", "", "App to create (required when the project has several)")
	cmd.Flags().StringVar(&opts.project, "project", config.ProjectFile, "Project configuration file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (default build/<app>/<platform>)")
	cmd.Flags().StringVar(&opts.template, "template", "", "Template repository URL or local path")
	cmd.Flags().StringVar(&opts.templateBranch, "template-branch", "", "Template branch to check out")
	cmd.Flags().StringVar(&opts.settings, "config", "", "Settings file (default $XDG_CONFIG_HOME/briefcase/config.toml)")

	return cmd
}

func runCreate(cmd *cobra.Command, rt *runtime, opts *createOptions, platform, format string) error {
	logger := logging.GetLogger("create")
	defer logging.LogOperationStart(logger, "create")()
	ctx := cmd.Context()

	settingsPath := opts.settings
	if settingsPath == "" {
		settingsPath = config.SettingsPath()
	}
	settings, err := config.LoadSettingsFrom(settingsPath)
	if err != nil {
		return err
	}

	app, err := config.LoadProject(opts.project, opts.app, platform, format)
	if err != nil {
		return err
	}
	if opts.template != "" {
		app.Template = opts.template
	}
	if opts.templateBranch != "" {
		app.TemplateBranch = opts.templateBranch
	}

	output := opts.output
	if output == "" {
		output = filepath.Join(filepath.Dir(opts.project), "build", app.AppName, strings.ToLower(platform))
	}

	python, err := pythonVersion(ctx, rt.executor)
	if err != nil {
		return err
	}

	cacheOpts := []cache.Option{
		cache.WithStdout(cmd.OutOrStdout()),
		cache.WithLogger(logging.GetLogger("cache")),
	}
	if settings.Cache.Dir != "" {
		cacheOpts = append(cacheOpts, cache.WithDir(settings.Cache.Dir))
	}
	if settings.Git.Fetch == config.FetchCLI {
		cacheOpts = append(cacheOpts, cache.WithRemoteOperations(git.NewCLIRemoteOperations(rt.executor.Clone())))
	}
	templateCache, err := cache.New(cacheOpts...)
	if err != nil {
		return err
	}

	renderer := rt.renderer
	if renderer == nil {
		renderer = cookiecutter.New(
			cookiecutter.WithExecutor(rt.executor.Clone()),
			cookiecutter.WithCommand(settings.Render.Command),
			cookiecutter.WithCacheDir(templateCache.Dir()),
			cookiecutter.WithTimeout(settings.Render.Timeout),
			cookiecutter.WithLogger(logging.GetLogger("cookiecutter")),
		)
	}

	toolVersion, err := briefcaseversion.Parse(version)
	if err != nil {
		return err
	}

	gen := template.NewGenerator(templateCache, renderer, toolVersion,
		template.WithOrganization(settings.Template.Organization),
		template.WithFallbackBranch(settings.Template.FallbackBranch),
		template.WithPythonVersion(python),
		template.WithLogger(logging.GetLogger("template")),
	)

	result, err := gen.Generate(ctx, app, template.Target{
		Platform:     platform,
		OutputFormat: format,
		OutputDir:    output,
	})
	if result.TemplatePopulated {
		logger.Info().Str("app", app.AppName).Str("template", result.Template).Msg("Using default template")
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s for %s %s in %s (template %s@%s)\n",
		app.FormalName, platform, format, output, result.Template, result.Checkout)
	return nil
}
