// Package version parses the tool's own version string and derives the
// template branch it is compatible with.
//
// Versions follow the Python packaging scheme: a numeric release, then
// optional pre-release (a, b, rc), post-release (.postN), development
// (.devN) and local (+label) segments:
//
//	37.42.7
//	37.42.7rc3
//	37.42.7.dev73+gad61a29.d20220919
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	platformerrors "github.com/yngvem/briefcase/errors"
)

var pattern = regexp.MustCompile(`^v?` +
	`(?P<release>\d+(?:\.\d+)*)` +
	`(?:[-_.]?(?P<pre>a|b|c|rc|alpha|beta|pre|preview)[-_.]?(?P<prenum>\d+)?)?` +
	`(?:[-_.]?(?:post|rev|r)[-_.]?(?P<post>\d+))?` +
	`(?:[-_.]?(?P<devmark>dev)[-_.]?(?P<dev>\d+)?)?` +
	`(?:\+(?P<local>[a-z0-9]+(?:[-_.][a-z0-9]+)*))?$`)

// Version is a parsed tool version.
type Version struct {
	raw     string
	release *semver.Version
	pre     string
	post    int
	dev     int
	local   string
}

// Parse parses a version string such as "0.3.12" or "0.3.13.dev4+g1a2b3c".
//
// Returns CodeInvalidInput for strings that are not versions.
func Parse(s string) (*Version, error) {
	raw := strings.TrimSpace(s)
	m := pattern.FindStringSubmatch(strings.ToLower(raw))
	if m == nil {
		return nil, platformerrors.WithContext(
			platformerrors.Newf(platformerrors.CodeInvalidInput, "invalid version %q", s),
			"version", s,
		)
	}
	group := func(name string) string {
		return m[pattern.SubexpIndex(name)]
	}

	parts := strings.Split(group("release"), ".")
	for len(parts) < 3 {
		parts = append(parts, "0")
	}

	release, err := semver.StrictNewVersion(strings.Join(trimZeros(parts[:3]), "."))
	if err != nil {
		return nil, platformerrors.Wrapf(err, platformerrors.CodeInvalidInput, "invalid release in version %q", s)
	}

	v := &Version{
		raw:     raw,
		release: release,
		post:    -1,
		dev:     -1,
		local:   group("local"),
	}
	if pre := group("pre"); pre != "" {
		v.pre = normalizePre(pre) + numberOr(group("prenum"), "0")
	}
	if post := group("post"); post != "" {
		if v.post, err = segment(s, "post", post); err != nil {
			return nil, err
		}
	}
	if group("devmark") != "" {
		if v.dev, err = segment(s, "dev", numberOr(group("dev"), "0")); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// versions fixed at build time.
func MustParse(s string) *Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("version: %v", err))
	}
	return v
}

// segment parses the number of a post or dev segment.
func segment(version, name, number string) (int, error) {
	n, err := strconv.Atoi(number)
	if err != nil {
		return 0, platformerrors.WrapWithContext(err, platformerrors.CodeInvalidInput,
			fmt.Sprintf("invalid %s segment in version %q", name, version),
			map[string]any{"version": version})
	}
	return n, nil
}

// trimZeros strips leading zeros so "07" parses as a strict semver part.
func trimZeros(parts []string) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		if out[i] = strings.TrimLeft(p, "0"); out[i] == "" {
			out[i] = "0"
		}
	}
	return out
}

func normalizePre(pre string) string {
	switch pre {
	case "alpha":
		return "a"
	case "beta":
		return "b"
	case "c", "pre", "preview":
		return "rc"
	default:
		return pre
	}
}

func numberOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// String returns the version as it was given.
func (v *Version) String() string {
	return v.raw
}

// Release returns the major.minor.patch release.
func (v *Version) Release() *semver.Version {
	return v.release
}

// CheckoutRef returns the template branch for this version: the release
// triple prefixed with "v". Pre-release, post-release, development and local
// segments are dropped, so 37.42.7.dev73+gad61a29 maps to v37.42.7.
func (v *Version) CheckoutRef() string {
	return "v" + v.release.String()
}

// IsDevelopment reports whether the version has a .devN segment.
func (v *Version) IsDevelopment() bool {
	return v.dev >= 0
}

// IsPrerelease reports whether the version has an a/b/rc segment.
func (v *Version) IsPrerelease() bool {
	return v.pre != ""
}

// Pre returns the normalized pre-release segment, e.g. "rc3", or "".
func (v *Version) Pre() string {
	return v.pre
}

// Post returns the post-release number, or -1.
func (v *Version) Post() int {
	return v.post
}

// Dev returns the development release number, or -1.
func (v *Version) Dev() int {
	return v.dev
}

// Local returns the local version label, e.g. "gad61a29.d20220919".
func (v *Version) Local() string {
	return v.local
}
