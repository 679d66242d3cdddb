package template

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRenderContext(t *testing.T) {
	app := AppConfig{
		AppName:     "my-app",
		FormalName:  "My App",
		Bundle:      "com.example-corp",
		Version:     "1.2.3",
		Description: "This is a simple app",
		Sources:     []string{"src/my_app"},
		URL:         "https://example.com",
		Author:      "First Last",
		AuthorEmail: "first@example.com",
		Supported:   true,
	}
	now := time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC)

	got := NewRenderContext(app, Target{Platform: "tester", OutputFormat: "dummy"}, "3.12", now)

	assert.Equal(t, RenderContext{
		"app_name":       "my-app",
		"formal_name":    "My App",
		"bundle":         "com.example-corp",
		"version":        "1.2.3",
		"description":    "This is a simple app",
		"sources":        []string{"src/my_app"},
		"url":            "https://example.com",
		"author":         "First Last",
		"author_email":   "first@example.com",
		"requires":       nil,
		"icon":           nil,
		"splash":         nil,
		"supported":      true,
		"document_types": map[string]map[string]any{},
		"python_version": "3.12",
		"module_name":    "my_app",
		"package_name":   "com.example_corp",
		"year":           "2024",
		"month":          "March",
		"output_format":  "dummy",
	}, got)
}

func TestNewRenderContext_Optional(t *testing.T) {
	app := AppConfig{
		AppName:  "app",
		Requires: []string{"toga"},
		Icon:     "icons/app",
		DocumentTypes: map[string]map[string]any{
			"doc": {"description": "A document", "extension": "doc"},
		},
	}

	got := NewRenderContext(app, Target{OutputFormat: "app"}, "", time.Now())

	assert.Equal(t, []string{"toga"}, got["requires"])
	assert.Equal(t, "icons/app", got["icon"])
	assert.Nil(t, got["url"])
	assert.Equal(t, app.DocumentTypes, got["document_types"])
}
