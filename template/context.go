package template

import (
	"strings"
	"time"
)

// RenderContext is the set of variables handed to the render engine.
type RenderContext map[string]any

// NewRenderContext builds the render context for app on target. The date
// fields come from now.
func NewRenderContext(app AppConfig, target Target, pythonVersion string, now time.Time) RenderContext {
	documentTypes := app.DocumentTypes
	if documentTypes == nil {
		documentTypes = map[string]map[string]any{}
	}

	return RenderContext{
		"app_name":       app.AppName,
		"formal_name":    app.FormalName,
		"bundle":         app.Bundle,
		"version":        app.Version,
		"description":    app.Description,
		"sources":        app.Sources,
		"url":            optional(app.URL),
		"author":         optional(app.Author),
		"author_email":   optional(app.AuthorEmail),
		"requires":       optionalList(app.Requires),
		"icon":           optional(app.Icon),
		"splash":         optional(app.Splash),
		"supported":      app.Supported,
		"document_types": documentTypes,
		"python_version": pythonVersion,
		"module_name":    strings.ReplaceAll(app.AppName, "-", "_"),
		"package_name":   strings.ReplaceAll(app.Bundle, "-", "_"),
		"year":           now.Format("2006"),
		"month":          now.Format("January"),
		"output_format":  target.OutputFormat,
	}
}

// optional maps unset strings to nil so templates can test for them.
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func optionalList(items []string) any {
	if len(items) == 0 {
		return nil
	}
	return items
}
