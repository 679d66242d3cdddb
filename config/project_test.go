package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	platformerrors "github.com/yngvem/briefcase/errors"
	"github.com/yngvem/briefcase/template"
)

const pyprojectTOML = `
[project]
name = "ignored"

[tool.briefcase]
project_name = "Hello World"
bundle = "com.example"
version = "0.0.1"
url = "https://example.com/helloworld"
author = "Jane Developer"
author_email = "jane@example.com"
requires = ["requests"]

[tool.briefcase.app.helloworld]
formal_name = "Hello World"
description = "A friendly app"
sources = ["src/helloworld"]
requires = ["toga-core"]
template_branch = "custom"

[tool.briefcase.app.helloworld.document_type.doc]
description = "A document"
extension = "doc"

[tool.briefcase.app.helloworld.macOS]
requires = ["toga-cocoa"]
supported = false

[tool.briefcase.app.helloworld.macOS.app]
template = "https://example.com/macos-template.git"

[tool.briefcase.app.other]
formal_name = "Other"
`

func writeProject(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ProjectFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProject(t *testing.T) {
	path := writeProject(t, pyprojectTOML)

	app, err := LoadProject(path, "helloworld", "linux", "system")
	require.NoError(t, err)

	assert.Equal(t, template.AppConfig{
		TemplateBranch: "custom",
		AppName:        "helloworld",
		FormalName:     "Hello World",
		Bundle:         "com.example",
		Version:        "0.0.1",
		Description:    "A friendly app",
		Sources:        []string{"src/helloworld"},
		URL:            "https://example.com/helloworld",
		Author:         "Jane Developer",
		AuthorEmail:    "jane@example.com",
		Requires:       []string{"requests", "toga-core"},
		Supported:      true,
		DocumentTypes: map[string]map[string]any{
			"doc": {"description": "A document", "extension": "doc"},
		},
	}, app)
}

func TestLoadProject_PlatformSections(t *testing.T) {
	path := writeProject(t, pyprojectTOML)

	app, err := LoadProject(path, "helloworld", "macOS", "app")
	require.NoError(t, err)

	assert.Equal(t, []string{"requests", "toga-core", "toga-cocoa"}, app.Requires)
	assert.False(t, app.Supported)
	assert.Equal(t, "https://example.com/macos-template.git", app.Template)
}

func TestLoadProject_SelectApp(t *testing.T) {
	single := writeProject(t, `
[tool.briefcase]
bundle = "com.example"

[tool.briefcase.app.solo]
sources = ["src/solo"]
`)

	app, err := LoadProject(single, "", "linux", "system")
	require.NoError(t, err)
	assert.Equal(t, "solo", app.AppName)
	assert.Equal(t, "solo", app.FormalName)

	_, err = LoadProject(writeProject(t, pyprojectTOML), "", "linux", "system")
	require.Error(t, err)
	assert.Equal(t, platformerrors.CodeInvalidInput, platformerrors.GetCode(err))

	_, err = LoadProject(writeProject(t, pyprojectTOML), "missing", "linux", "system")
	require.Error(t, err)
	assert.Equal(t, platformerrors.CodeNotFound, platformerrors.GetCode(err))
}

func TestLoadProject_Errors(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		wantCode platformerrors.ErrorCode
	}{
		{
			name:     "missing file",
			path:     func(t *testing.T) string { return filepath.Join(t.TempDir(), ProjectFile) },
			wantCode: platformerrors.CodeNotFound,
		},
		{
			name:     "invalid toml",
			path:     func(t *testing.T) string { return writeProject(t, "[tool.briefcase\n") },
			wantCode: platformerrors.CodeInvalidConfig,
		},
		{
			name:     "no briefcase section",
			path:     func(t *testing.T) string { return writeProject(t, "[project]\nname = \"x\"\n") },
			wantCode: platformerrors.CodeInvalidConfig,
		},
		{
			name:     "no apps",
			path:     func(t *testing.T) string { return writeProject(t, "[tool.briefcase]\nbundle = \"com.example\"\n") },
			wantCode: platformerrors.CodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadProject(tt.path(t), "", "linux", "system")
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, platformerrors.GetCode(err))
		})
	}
}
