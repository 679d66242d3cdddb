package exec

// config holds the configuration for command execution.
// Global settings are set at creation time; local settings apply to a single
// run and are reset afterwards. A nil local flag defers to the global one.
type config struct {
	globalEnv           map[string]string
	globalDir           string
	globalInheritEnv    bool
	globalDisableColors bool
	globalPassthrough   bool

	localEnv           map[string]string
	localDir           string
	localInheritEnv    *bool
	localDisableColors *bool
	localPassthrough   *bool
}

// colorEnv disables color output in most CLIs.
var colorEnv = map[string]string{
	"NO_COLOR":       "1",
	"TERM":           "dumb",
	"CLICOLOR":       "0",
	"CLICOLOR_FORCE": "0",
	"FORCE_COLOR":    "0",
}

func newConfig() *config {
	return &config{
		globalEnv: make(map[string]string),
		localEnv:  make(map[string]string),
	}
}

func enabled() *bool {
	v := true
	return &v
}

func copyFlag(flag *bool) *bool {
	if flag == nil {
		return nil
	}
	v := *flag
	return &v
}

func resolveFlag(local *bool, global bool) bool {
	if local != nil {
		return *local
	}
	return global
}

func copyEnv(dst, src map[string]string) map[string]string {
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// clone creates a deep copy of the configuration.
func (c *config) clone() *config {
	return &config{
		globalEnv:           copyEnv(make(map[string]string), c.globalEnv),
		globalDir:           c.globalDir,
		globalInheritEnv:    c.globalInheritEnv,
		globalDisableColors: c.globalDisableColors,
		globalPassthrough:   c.globalPassthrough,
		localEnv:            copyEnv(make(map[string]string), c.localEnv),
		localDir:            c.localDir,
		localInheritEnv:     copyFlag(c.localInheritEnv),
		localDisableColors:  copyFlag(c.localDisableColors),
		localPassthrough:    copyFlag(c.localPassthrough),
	}
}

// effectiveEnv merges global and local environment variables, local winning.
func (c *config) effectiveEnv() map[string]string {
	env := copyEnv(make(map[string]string), c.globalEnv)
	copyEnv(env, c.localEnv)
	if c.effectiveDisableColors() {
		copyEnv(env, colorEnv)
	}
	return env
}

func (c *config) effectiveDir() string {
	if c.localDir != "" {
		return c.localDir
	}
	return c.globalDir
}

func (c *config) effectiveInheritEnv() bool {
	return resolveFlag(c.localInheritEnv, c.globalInheritEnv)
}

func (c *config) effectiveDisableColors() bool {
	return resolveFlag(c.localDisableColors, c.globalDisableColors)
}

func (c *config) effectivePassthrough() bool {
	return resolveFlag(c.localPassthrough, c.globalPassthrough)
}

// resetLocal clears all local settings after a run.
func (c *config) resetLocal() {
	c.localEnv = make(map[string]string)
	c.localDir = ""
	c.localInheritEnv = nil
	c.localDisableColors = nil
	c.localPassthrough = nil
}
