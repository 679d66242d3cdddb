package template

import (
	"fmt"
	"strings"
)

const (
	// DefaultOrganization hosts the default platform templates.
	DefaultOrganization = "https://github.com/beeware"

	// FallbackBranch is tried when a development build's version branch
	// does not exist yet.
	FallbackBranch = "main"
)

// DefaultTemplateURL returns the default template repository for target
// under organization.
//
// Example:
//
//	DefaultTemplateURL(DefaultOrganization, Target{Platform: "tester", OutputFormat: "dummy"})
//	// https://github.com/beeware/briefcase-tester-dummy-template.git
func DefaultTemplateURL(organization string, target Target) string {
	return fmt.Sprintf("%s/briefcase-%s-template.git",
		strings.TrimSuffix(organization, "/"), target.Identifier())
}

// Locate returns the template location for app. An explicit template is
// returned verbatim; otherwise the default for target is returned and
// populated is true.
func Locate(app AppConfig, target Target, organization string) (location string, populated bool) {
	if app.Template != "" {
		return app.Template, false
	}
	if organization == "" {
		organization = DefaultOrganization
	}
	return DefaultTemplateURL(organization, target), true
}
