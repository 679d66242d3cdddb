package config

import (
	"os"
	"slices"
	"sort"

	"github.com/go-viper/mapstructure/v2"
	gotoml "github.com/pelletier/go-toml/v2"
	platformerrors "github.com/yngvem/briefcase/errors"
	"github.com/yngvem/briefcase/template"
)

// ProjectFile is the project configuration file name.
const ProjectFile = "pyproject.toml"

type pyproject struct {
	Tool struct {
		Briefcase map[string]any `toml:"briefcase"`
	} `toml:"tool"`
}

// appConfig mirrors the keys an app section may set.
type appConfig struct {
	Template       string                    `mapstructure:"template"`
	TemplateBranch string                    `mapstructure:"template_branch"`
	FormalName     string                    `mapstructure:"formal_name"`
	Bundle         string                    `mapstructure:"bundle"`
	Version        string                    `mapstructure:"version"`
	Description    string                    `mapstructure:"description"`
	Sources        []string                  `mapstructure:"sources"`
	URL            string                    `mapstructure:"url"`
	Author         string                    `mapstructure:"author"`
	AuthorEmail    string                    `mapstructure:"author_email"`
	Requires       []string                  `mapstructure:"requires"`
	Icon           string                    `mapstructure:"icon"`
	Splash         string                    `mapstructure:"splash"`
	Supported      *bool                     `mapstructure:"supported"`
	DocumentTypes  map[string]map[string]any `mapstructure:"document_type"`
}

// concatenated keys accumulate across layers instead of being replaced.
var concatenated = []string{"sources", "requires"}

// LoadProject reads the configuration of app from the pyproject.toml at
// path for the given platform and output format.
//
// Keys are layered from least to most specific: [tool.briefcase],
// [tool.briefcase.app.<app>], [tool.briefcase.app.<app>.<platform>] and
// [tool.briefcase.app.<app>.<platform>.<format>]. Sources and requires
// accumulate; other keys are replaced. When app is empty the project must
// define exactly one app.
func LoadProject(path, app, platform, format string) (template.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return template.AppConfig{}, platformerrors.WrapWithContext(err, platformerrors.CodeNotFound,
			"failed to read project configuration", map[string]any{"path": path})
	}

	var doc pyproject
	if err := gotoml.Unmarshal(data, &doc); err != nil {
		return template.AppConfig{}, platformerrors.WrapWithContext(err, platformerrors.CodeInvalidConfig,
			"failed to parse project configuration", map[string]any{"path": path})
	}
	if doc.Tool.Briefcase == nil {
		return template.AppConfig{}, platformerrors.WithContext(
			platformerrors.New(platformerrors.CodeInvalidConfig, "no [tool.briefcase] section"),
			"path", path)
	}

	apps, _ := doc.Tool.Briefcase["app"].(map[string]any)
	name, err := selectApp(apps, app)
	if err != nil {
		return template.AppConfig{}, platformerrors.WithContext(err, "path", path)
	}

	merged := map[string]any{}
	layer(merged, doc.Tool.Briefcase)
	section, _ := apps[name].(map[string]any)
	layer(merged, section)
	if platformSection, ok := section[platform].(map[string]any); ok {
		layer(merged, platformSection)
		if formatSection, ok := platformSection[format].(map[string]any); ok {
			layer(merged, formatSection)
		}
	}

	var raw appConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &raw,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return template.AppConfig{}, platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to create decoder")
	}
	if err := decoder.Decode(merged); err != nil {
		return template.AppConfig{}, platformerrors.WrapWithContext(err, platformerrors.CodeInvalidConfig,
			"invalid app configuration", map[string]any{"path": path, "app": name})
	}

	cfg := template.AppConfig{
		Template:       raw.Template,
		TemplateBranch: raw.TemplateBranch,
		AppName:        name,
		FormalName:     raw.FormalName,
		Bundle:         raw.Bundle,
		Version:        raw.Version,
		Description:    raw.Description,
		Sources:        raw.Sources,
		URL:            raw.URL,
		Author:         raw.Author,
		AuthorEmail:    raw.AuthorEmail,
		Requires:       raw.Requires,
		Icon:           raw.Icon,
		Splash:         raw.Splash,
		Supported:      raw.Supported == nil || *raw.Supported,
		DocumentTypes:  raw.DocumentTypes,
	}
	if cfg.FormalName == "" {
		cfg.FormalName = name
	}
	return cfg, nil
}

func selectApp(apps map[string]any, app string) (string, error) {
	names := make([]string, 0, len(apps))
	for name := range apps {
		names = append(names, name)
	}
	sort.Strings(names)

	switch {
	case app != "":
		if _, ok := apps[app]; !ok {
			return "", platformerrors.WithContextMap(
				platformerrors.Newf(platformerrors.CodeNotFound, "app %q is not defined", app),
				map[string]any{"apps": names})
		}
		return app, nil
	case len(names) == 1:
		return names[0], nil
	case len(names) == 0:
		return "", platformerrors.New(platformerrors.CodeInvalidConfig, "project does not define any apps")
	default:
		return "", platformerrors.WithContextMap(
			platformerrors.New(platformerrors.CodeInvalidInput, "project defines several apps, select one"),
			map[string]any{"apps": names})
	}
}

// layer copies the scalar and list keys of src over dst. Nested tables
// are platform sections and are skipped, except document types.
func layer(dst, src map[string]any) {
	for key, value := range src {
		if _, isTable := value.(map[string]any); isTable && key != "document_type" {
			continue
		}
		if slices.Contains(concatenated, key) {
			if existing, ok := dst[key].([]any); ok {
				if more, ok := value.([]any); ok {
					dst[key] = append(slices.Clone(existing), more...)
					continue
				}
			}
		}
		dst[key] = value
	}
}
