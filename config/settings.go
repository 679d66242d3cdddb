package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	platformerrors "github.com/yngvem/briefcase/errors"
	"github.com/yngvem/briefcase/template"
)

// EnvPrefix prefixes environment variables that override settings.
const EnvPrefix = "BRIEFCASE_"

const (
	// FetchGoGit fetches cached templates with go-git.
	FetchGoGit = "gogit"

	// FetchCLI fetches cached templates with the git binary.
	FetchCLI = "cli"
)

// Settings are briefcase's tool settings.
type Settings struct {
	Template TemplateSettings `koanf:"template"`
	Cache    CacheSettings    `koanf:"cache"`
	Render   RenderSettings   `koanf:"render"`
	Git      GitSettings      `koanf:"git"`
}

// TemplateSettings control where templates come from and which branch
// development builds fall back to.
type TemplateSettings struct {
	Organization   string `koanf:"organization"`
	FallbackBranch string `koanf:"fallback_branch"`
}

// CacheSettings locate the template cache.
type CacheSettings struct {
	// Dir overrides the template cache directory. Empty means the
	// cookiecutter default.
	Dir string `koanf:"dir"`
}

// RenderSettings configure the render engine command.
type RenderSettings struct {
	Command string        `koanf:"command"`
	Timeout time.Duration `koanf:"timeout"`
}

// GitSettings select how cached templates are fetched.
type GitSettings struct {
	// Fetch is FetchGoGit or FetchCLI.
	Fetch string `koanf:"fetch"`
}

func defaults() map[string]any {
	return map[string]any{
		"template.organization":    template.DefaultOrganization,
		"template.fallback_branch": template.FallbackBranch,
		"cache.dir":                "",
		"render.command":           "cookiecutter",
		"render.timeout":           "0s",
		"git.fetch":                FetchGoGit,
	}
}

// SettingsPath returns the user settings file location.
func SettingsPath() string {
	return filepath.Join(xdg.ConfigHome, "briefcase", "config.toml")
}

// LoadSettings loads settings from the defaults, the user settings file
// and the environment.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(SettingsPath())
}

// LoadSettingsFrom is LoadSettings with an explicit settings file. A
// missing file is skipped.
func LoadSettingsFrom(path string) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to load default settings")
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, platformerrors.WrapWithContext(err, platformerrors.CodeInvalidConfig,
				"failed to load settings file", map[string]any{"path": path})
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey(k.Keys())), nil); err != nil {
		return nil, platformerrors.Wrap(err, platformerrors.CodeInvalidConfig, "failed to load settings from environment")
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, platformerrors.Wrap(err, platformerrors.CodeInvalidConfig, "failed to decode settings")
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// envKey maps BRIEFCASE_TEMPLATE_FALLBACK_BRANCH to template.fallback_branch.
// Known keys are matched first so underscores inside a key survive.
func envKey(known []string) func(string) string {
	byEnv := make(map[string]string, len(known))
	for _, key := range known {
		byEnv[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(s string) string {
		name := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if key, ok := byEnv[name]; ok {
			return key
		}
		return strings.ReplaceAll(name, "_", ".")
	}
}

func (s *Settings) validate() error {
	switch s.Git.Fetch {
	case FetchGoGit, FetchCLI:
	default:
		return platformerrors.WithContext(
			platformerrors.Newf(platformerrors.CodeInvalidConfig, "git.fetch must be %q or %q", FetchGoGit, FetchCLI),
			"value", s.Git.Fetch)
	}

	if s.Render.Timeout < 0 {
		return platformerrors.New(platformerrors.CodeInvalidConfig, "render.timeout must not be negative")
	}
	if s.Template.FallbackBranch == "" {
		return platformerrors.New(platformerrors.CodeInvalidConfig, "template.fallback_branch must not be empty")
	}
	return nil
}
