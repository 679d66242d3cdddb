package cache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	platformerrors "github.com/yngvem/briefcase/errors"
	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable that overrides the location of
// the render engine's user configuration file.
const ConfigEnv = "COOKIECUTTER_CONFIG"

// userConfig is the subset of ~/.cookiecutterrc the cache cares about.
type userConfig struct {
	CookiecuttersDir string `yaml:"cookiecutters_dir"`
}

// DefaultDir returns the directory the render engine clones templates into:
// cookiecutters_dir from the user configuration file if set, otherwise
// ~/.cookiecutters.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", platformerrors.Wrap(err, platformerrors.CodeInvalidConfig, "failed to determine home directory")
	}

	configPath := os.Getenv(ConfigEnv)
	if configPath == "" {
		configPath = filepath.Join(home, ".cookiecutterrc")
	}

	return dirFromConfig(home, configPath)
}

// dirFromConfig reads cookiecutters_dir from configPath. A missing file
// yields the default directory under home.
func dirFromConfig(home, configPath string) (string, error) {
	fallback := filepath.Join(home, ".cookiecutters")

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return fallback, nil
	}
	if err != nil {
		return "", platformerrors.WrapWithContext(err, platformerrors.CodeInvalidConfig,
			"failed to read cookiecutter config", map[string]any{"path": configPath})
	}

	var cfg userConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return "", platformerrors.WrapWithContext(err, platformerrors.CodeInvalidConfig,
			fmt.Sprintf("invalid cookiecutter config %s", configPath), map[string]any{"path": configPath})
	}

	if cfg.CookiecuttersDir == "" {
		return fallback, nil
	}
	return expandHome(cfg.CookiecuttersDir, home), nil
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return os.ExpandEnv(path)
}
