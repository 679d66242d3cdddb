package cache

import (
	"fmt"
	"regexp"
	"strings"
)

// repoPattern matches locations the render engine treats as repositories
// rather than local directories.
var repoPattern = regexp.MustCompile(`^((((git|hg)\+)?(git|ssh|file|https?):(//)?)|(\w+@[\w.]+))`)

// IsRepoURL reports whether location names a remote repository.
//
// Examples:
//   - https://github.com/beeware/briefcase-macOS-app-template.git → true
//   - git@github.com:beeware/briefcase-macOS-app-template.git → true
//   - git+ssh://git@github.com/org/repo → true
//   - ../my-template, /abs/template → false
func IsRepoURL(location string) bool {
	return repoPattern.MatchString(location)
}

// RepoName returns the directory name a clone of location is cached under:
// the last path segment (after any ':'), without a trailing ".git".
//
// Examples:
//   - https://github.com/beeware/briefcase-tester-dummy-template.git → briefcase-tester-dummy-template
//   - git@github.com:org/repo → repo
//   - https://example.com/templates/ → templates
func RepoName(location string) string {
	name := strings.TrimRight(location, "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, ":"); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, ".git")
}

// abbreviations are the repository shorthands the render engine expands.
var abbreviations = map[string]string{
	"gh": "https://github.com/%s.git",
	"gl": "https://gitlab.com/%s.git",
	"bb": "https://bitbucket.org/%s",
}

// ExpandAbbreviation expands "gh:org/repo" style shorthands into full URLs.
// Other locations are returned unchanged.
//
// Examples:
//   - gh:beeware/briefcase-template → https://github.com/beeware/briefcase-template.git
//   - bb:org/repo → https://bitbucket.org/org/repo
func ExpandAbbreviation(location string) string {
	prefix, rest, ok := strings.Cut(location, ":")
	if !ok {
		return location
	}
	if format, known := abbreviations[prefix]; known && rest != "" {
		return fmt.Sprintf(format, rest)
	}
	return location
}
